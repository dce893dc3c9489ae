package bootstrap

import (
	"context"
	"log/slog"

	"padel-club/internal/infra/cache"
	"padel-club/internal/infra/export"
	"padel-club/internal/infra/messaging"
	"padel-club/internal/pkg/config"
	"padel-club/internal/pkg/metrics"
	"padel-club/internal/pkg/obs"
	"padel-club/internal/usecase/queries"
	"padel-club/internal/usecase/shared"

	"go.uber.org/fx"
)

// InfraModule wires the optional backends. Redis, RabbitMQ and the OTLP
// collector each fall back to a no-op when unconfigured.
var InfraModule = fx.Module("infra",
	fx.Provide(
		NewAvailabilityCache,
		NewEventPublisher,
		fx.Annotate(
			export.NewBookingWorkbook,
			fx.As(new(queries.BookingExporter)),
		),
	),
	fx.Invoke(
		metrics.Register,
		StartTracing,
	),
)

func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.AvailabilityCache {
	if cfg.Redis.Addr == "" {
		logger.Info("availability cache disabled: no redis address configured")
		return cache.NoopAvailabilityCache{}
	}
	client := cache.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// An unreachable redis degrades to database reads, so startup goes on.
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis not reachable at startup", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return cache.NewRedisAvailabilityCache(client, cfg.Redis.TTL)
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	if cfg.AMQP.URL == "" {
		return messaging.NewNoopPublisher(logger), nil
	}
	pub, err := messaging.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func StartTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) {
	var shutdown func(context.Context) error
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			shutdown, err = obs.InitTracer(ctx, cfg.Tracing, logger)
			return err
		},
		OnStop: func(ctx context.Context) error {
			if shutdown == nil {
				return nil
			}
			return shutdown(ctx)
		},
	})
}
