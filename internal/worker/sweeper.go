package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"padel-club/internal/usecase/commands"
)

type Sweeper interface {
	Sweep(ctx context.Context) (*commands.SweepReport, error)
}

// SweepWorker materializes recurring reservations at startup and then on
// every interval. A sweep that fails before touching any rule is retried
// with backoff; once retries are exhausted the worker waits for the next
// interval.
type SweepWorker struct {
	sweeper  Sweeper
	interval time.Duration
	retry    RetryPolicy
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweepWorker(sweeper Sweeper, interval time.Duration, retry RetryPolicy, logger *slog.Logger) *SweepWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SweepWorker{
		sweeper:  sweeper,
		interval: interval,
		retry:    retry,
		logger:   logger.With("component", "sweep_worker"),
	}
}

// Start launches the loop in the background. ctx bounds the worker's whole
// life, not just startup.
func (w *SweepWorker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return
	}
	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})
	go func() {
		defer close(w.done)
		w.run(ctx)
	}()
}

// Stop cancels the loop and waits for an in-flight sweep to return, or for
// ctx to expire.
func (w *SweepWorker) Stop(ctx context.Context) error {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel = nil
	w.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *SweepWorker) run(ctx context.Context) {
	w.logger.Info("sweep worker started", "interval", w.interval.String())
	defer w.logger.Info("sweep worker stopped")

	attempt := 0
	for {
		wait := w.interval
		report, err := w.sweeper.Sweep(ctx)
		switch {
		case ctx.Err() != nil:
			return
		case err != nil:
			attempt++
			if attempt <= w.retry.MaxRetries {
				wait = w.retry.NextDelay(attempt)
				w.logger.Warn("sweep failed, retrying", "error", err, "attempt", attempt, "delay", wait.String())
			} else {
				w.logger.Error("sweep failed, giving up until next interval", "error", err, "attempts", attempt)
				attempt = 0
			}
		default:
			attempt = 0
			w.logger.Info("sweep finished",
				"rules", report.Rules,
				"created", report.Created,
				"existing", report.Existing,
				"conflicts", report.Conflicts,
				"skipped", report.Skipped,
				"failures", len(report.Failures),
			)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}
