// Package batch computes ETC for many independent sequences or sequence
// pairs on a bounded pool of workers.
//
// Every job runs on its own copy of the input and results come back in job
// order, regardless of completion order.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/axiomhq/etc"
)

// ErrNoJobs is returned by Run when it is given nothing to do.
var ErrNoJobs = errors.New("batch: no jobs")

// Job is one unit of work. A job with a non-nil Y is a joint (2D) job.
type Job struct {
	Name string
	X    etc.Sequence
	Y    etc.Sequence
}

// Outcome is the result of one Job. Err is set instead of Result when the
// job failed; a failed job does not stop the others.
type Outcome struct {
	Index   int
	Name    string
	Length  int
	Joint   bool
	Result  etc.Result
	Elapsed time.Duration
	Err     error
}

// Report collects the outcomes of one Run.
type Report struct {
	RunID    uuid.UUID
	Outcomes []Outcome
	Elapsed  time.Duration
}

// Config controls a Run.
type Config struct {
	// Workers bounds concurrent jobs. Zero means runtime.GOMAXPROCS(0).
	Workers int
	// Options is passed to every etc.Compute / etc.Compute2D call.
	Options etc.Options
	// Logger receives per-job debug lines and a completion line.
	// Nil discards them.
	Logger *slog.Logger
}

// Run executes jobs with at most cfg.Workers in flight. It returns early
// with ctx's error if ctx is cancelled; jobs not yet started are skipped.
func Run(ctx context.Context, jobs []Job, cfg Config) (*Report, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}
	var (
		log     = cfg.Logger
		workers = cfg.Workers
		start   = time.Now()
		report  = &Report{RunID: uuid.New(), Outcomes: make([]Outcome, len(jobs))}
	)
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log = log.With("run_id", report.RunID.String())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each slot is written by exactly one goroutine.
			report.Outcomes[i] = runJob(i, job, cfg.Options)
			o := report.Outcomes[i]
			if o.Err != nil {
				log.Warn("job failed", "index", i, "name", job.Name, "error", o.Err)
				return nil
			}
			log.Debug("job done", "index", i, "name", job.Name,
				"length", o.Length, "etc", o.Result.ETC, "elapsed", o.Elapsed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	report.Elapsed = time.Since(start)
	log.Info("batch complete", "jobs", len(jobs), "workers", workers, "elapsed", report.Elapsed)
	return report, nil
}

func runJob(i int, job Job, opts etc.Options) Outcome {
	o := Outcome{Index: i, Name: job.Name, Length: len(job.X), Joint: job.Y != nil}
	start := time.Now()
	if o.Joint {
		o.Result, o.Err = etc.Compute2D(job.X, job.Y, opts)
	} else {
		o.Result, o.Err = etc.Compute(job.X, opts)
	}
	o.Elapsed = time.Since(start)
	return o
}

// Map computes ETC for each sequence with the given options and returns
// the results in input order. It stops at the first failing sequence.
func Map(ctx context.Context, seqs []etc.Sequence, workers int, opts etc.Options) ([]etc.Result, error) {
	jobs := make([]Job, len(seqs))
	for i, s := range seqs {
		jobs[i] = Job{X: s}
	}
	report, err := Run(ctx, jobs, Config{Workers: workers, Options: opts})
	if err != nil {
		return nil, err
	}
	out := make([]etc.Result, len(report.Outcomes))
	for i, o := range report.Outcomes {
		if o.Err != nil {
			return nil, fmt.Errorf("batch: sequence %d: %w", i, o.Err)
		}
		out[i] = o.Result
	}
	return out, nil
}
