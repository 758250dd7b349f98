package runner

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"

	"cornercase/internal/logging"
	"cornercase/internal/nft"
)

// Task is one unit of work handed to Run.
type Task struct {
	Case string
	Name string
	Run  func(ctx context.Context) (nft.Result, error)
}

// Outcome is the settled result of one task, stored at the task's launch index.
type Outcome struct {
	Index   int
	Case    string
	Name    string
	Result  nft.Result
	Err     error
	Elapsed time.Duration
}

// OK reports whether the task succeeded.
func (o Outcome) OK() bool { return o.Err == nil }

// Options controls launch pacing.
type Options struct {
	// Stagger is the pause between consecutive launches.
	Stagger time.Duration
	// JobTimeout bounds each task; zero leaves tasks unbounded.
	JobTimeout time.Duration
	// MaxConcurrent caps in-flight tasks; zero or negative is unbounded.
	MaxConcurrent int
	Logger        *slog.Logger
}

// Run launches tasks in order, pausing Stagger between launches, and waits for every
// launched task to settle. It never short-circuits: one failing task does not affect
// the others. Cancelling ctx stops further launches; tasks not yet launched settle
// with the context error.
func Run(ctx context.Context, tasks []Task, opts Options) []Outcome {
	logger := logging.NewComponentLogger(opts.Logger, "runner")
	outcomes := make([]Outcome, len(tasks))
	for i, task := range tasks {
		outcomes[i] = Outcome{Index: i, Case: task.Case, Name: task.Name}
	}
	if len(tasks) == 0 {
		return outcomes
	}

	var g errgroup.Group
	if opts.MaxConcurrent > 0 {
		g.SetLimit(opts.MaxConcurrent)
	}

	launched := 0
	var timer *time.Timer
launch:
	for i := range tasks {
		if i > 0 && opts.Stagger > 0 {
			if timer == nil {
				timer = time.NewTimer(opts.Stagger)
			} else {
				timer.Reset(opts.Stagger)
			}
			select {
			case <-ctx.Done():
				break launch
			case <-timer.C:
			}
		} else if ctx.Err() != nil {
			break
		}

		task := tasks[i]
		out := &outcomes[i]
		logging.WithContext(logging.WithJob(ctx, task.Case, task.Name), logger).Debug(
			"launching job",
			logging.String(logging.FieldEventType, "job_launch"),
			logging.Int("index", i),
		)
		g.Go(func() error {
			runTask(ctx, task, out, opts.JobTimeout, logger)
			return nil
		})
		launched++
	}
	if timer != nil {
		timer.Stop()
	}

	_ = g.Wait()

	if launched < len(tasks) {
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		for i := launched; i < len(tasks); i++ {
			outcomes[i].Err = fmt.Errorf("not launched: %w", err)
		}
		logger.Warn("launch stopped early",
			logging.Int("launched", launched),
			logging.Int("total", len(tasks)),
			logging.Error(err),
		)
	}
	return outcomes
}

func runTask(ctx context.Context, task Task, out *Outcome, timeout time.Duration, logger *slog.Logger) {
	jobCtx := logging.WithJob(ctx, task.Case, task.Name)
	if timeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(jobCtx, timeout)
		defer cancel()
	}
	jobLogger := logging.WithContext(jobCtx, logger)

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out.Err = fmt.Errorf("job panicked: %v", r)
			jobLogger.Error("job panicked",
				logging.String(logging.FieldEventType, "job_panic"),
				logging.String("stack", string(debug.Stack())),
			)
		}
		out.Elapsed = time.Since(start)
	}()

	if task.Run == nil {
		out.Err = fmt.Errorf("job %q has no run function", task.Name)
		return
	}
	out.Result, out.Err = task.Run(jobCtx)

	if out.Err != nil {
		attrs := []logging.Attr{
			logging.String(logging.FieldEventType, "job_failed"),
			logging.Duration("elapsed", time.Since(start)),
			logging.Error(out.Err),
		}
		if out.Result.Minted() {
			attrs = append(attrs, logging.String("mint", out.Result.Address.ToBase58()))
		}
		jobLogger.Warn("job failed", logging.Args(attrs...)...)
		return
	}
	jobLogger.Info("job finished",
		logging.String(logging.FieldEventType, "job_done"),
		logging.String("mint", out.Result.Address.ToBase58()),
		logging.Duration("elapsed", time.Since(start)),
	)
}
