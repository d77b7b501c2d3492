package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/pcmwav/internal/audio"
	"github.com/sourcegraph/conc/pool"
)

type Result struct {
	Job     Job
	Info    audio.Info
	Skipped bool
	Err     error
}

// Converter is the single-file operation a Runner drives.
type Converter interface {
	ConvertFile(src, dest string, f audio.Format) (audio.Info, error)
}

type Runner struct {
	Converter   Converter
	Format      audio.Format
	Concurrency int
	SkipMissing bool
	Logger      *slog.Logger
}

// Run converts every job and returns one Result per job in the same order.
// The returned error joins the errors of all failed jobs; skipped jobs do
// not count as failures. Jobs not yet started when ctx is done fail with
// the context error.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	if r.Converter == nil {
		return nil, fmt.Errorf("batch runner has no converter")
	}
	if err := r.Format.Validate(); err != nil {
		return nil, err
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := r.Concurrency
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(jobs))
	p := pool.New().WithMaxGoroutines(workers)
	for i, job := range jobs {
		p.Go(func() {
			results[i] = r.runOne(ctx, logger, job)
		})
	}
	p.Wait()

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Job.Source, res.Err))
		}
	}
	return results, errors.Join(errs...)
}

func (r *Runner) runOne(ctx context.Context, logger *slog.Logger, job Job) Result {
	res := Result{Job: job}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	info, err := r.Converter.ConvertFile(job.Source, job.Dest, r.Format)
	switch {
	case err == nil:
		res.Info = info
		logger.Info("converted",
			"source", job.Source,
			"dest", job.Dest,
			"bytes", info.Bytes,
			"duration_s", info.Duration,
		)
	case r.SkipMissing && errors.Is(err, audio.ErrSourceNotFound):
		res.Skipped = true
		logger.Warn("source missing; skipped", "source", job.Source)
	default:
		res.Err = err
		logger.Error("conversion failed", "source", job.Source, "error", err)
	}
	return res
}
