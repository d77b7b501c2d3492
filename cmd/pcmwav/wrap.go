package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/example/pcmwav/internal/audio"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newWrapCmd() *cobra.Command {
	var in string
	var out string

	cmd := &cobra.Command{
		Use:   "wrap",
		Short: "Wrap a single raw PCM file (or stdin) in a WAV header",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			f := cfg.Format.AudioFormat()
			if err := f.Validate(); err != nil {
				return err
			}

			raw, err := readRaw(appFs, in, cmd.InOrStdin())
			if err != nil {
				return err
			}

			if out == "-" {
				_, err = audio.Encode(cmd.OutOrStdout(), raw, f)
				return err
			}

			info, err := audio.NewWriter(appFs).WriteWAV(raw, out, f)
			if err != nil {
				return err
			}
			slog.Info("wrote wav", "dest", info.Path, "bytes", info.Bytes, "duration_s", info.Duration)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d bytes, %.1fs (%s)\n", info.Path, info.Bytes, info.Duration, f)
			return err
		},
	}

	cmd.Flags().StringVar(&in, "in", "-", "Raw PCM input path ('-' for stdin)")
	cmd.Flags().StringVar(&out, "out", "out.wav", "Output WAV path ('-' for stdout)")

	return cmd
}

func readRaw(fsys afero.Fs, path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: read stdin: %w", audio.ErrSourceNotFound, err)
		}
		return b, nil
	}

	b, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrSourceNotFound, err)
	}
	return b, nil
}
