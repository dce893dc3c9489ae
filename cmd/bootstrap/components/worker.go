package components

import (
	"context"
	"log/slog"

	"padel-club/internal/pkg/config"
	"padel-club/internal/usecase/commands"
	"padel-club/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(NewSweepWorker),
	fx.Invoke(registerSweepWorker),
)

func NewSweepWorker(expander *commands.Expander, cfg config.Config, logger *slog.Logger) *worker.SweepWorker {
	return worker.NewSweepWorker(expander, cfg.Schedule.SweepInterval, worker.DefaultRetryPolicy(), logger)
}

// The worker outlives OnStart, so it gets a background context and is
// cancelled in OnStop.
func registerSweepWorker(lc fx.Lifecycle, w *worker.SweepWorker) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			w.Start(context.Background())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return w.Stop(ctx)
		},
	})
}
