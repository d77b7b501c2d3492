package main

import (
	"fmt"

	"github.com/example/pcmwav/internal/audio"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.wav>...",
		Short: "Print format and duration of WAV files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				data, err := afero.ReadFile(appFs, path)
				if err != nil {
					return fmt.Errorf("%w: %w", audio.ErrSourceNotFound, err)
				}
				ins, err := audio.DecodeWAV(data)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(),
					"%s\n  Format: %s\n  Size: %d bytes (%d frames)\n  Duration: %.3fs\n  Peak: %.3f\n",
					path, ins.Format, ins.Bytes, ins.Frames, ins.Duration, ins.Peak,
				)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
