package main

import (
	"log/slog"

	"github.com/example/pcmwav/internal/audio"
	"github.com/example/pcmwav/internal/batch"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [source...]",
		Short: "Convert raw PCM files in a directory to WAV",
		Long: "Convert raw PCM files to WAV, writing each output next to its source.\n" +
			"Sources are taken from the arguments, then convert.sources in the config file,\n" +
			"then a scan of --dir with --pattern.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			sources := cfg.Convert.Sources
			if len(args) > 0 {
				sources = args
			}

			jobs, err := batch.Plan(appFs, batch.PlanOptions{
				Dir:     cfg.Convert.Dir,
				Sources: sources,
				Pattern: cfg.Convert.Pattern,
				Suffix:  cfg.Convert.Suffix,
			})
			if err != nil {
				return err
			}
			slog.Debug("planned conversion", "jobs", len(jobs), "dir", cfg.Convert.Dir)

			runner := &batch.Runner{
				Converter:   audio.NewWriter(appFs),
				Format:      cfg.Format.AudioFormat(),
				Concurrency: cfg.Convert.Concurrency,
				SkipMissing: cfg.Convert.SkipMissing,
				Logger:      slog.Default(),
			}
			results, runErr := runner.Run(cmd.Context(), jobs)
			if err := batch.Report(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			return runErr
		},
	}
}
