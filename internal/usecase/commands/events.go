package commands

import (
	"context"
	"log/slog"

	"padel-club/internal/domain/schedule"
	"padel-club/internal/usecase/shared"
)

// publish is best effort; a lost event never fails the request.
func publish(ctx context.Context, logger *slog.Logger, pub shared.EventPublisher, routingKey string, payload any) {
	if err := pub.Publish(ctx, routingKey, payload); err != nil {
		logger.Warn("failed to publish event", "routing_key", routingKey, "error", err)
	}
}

func invalidate(ctx context.Context, logger *slog.Logger, cache shared.AvailabilityCache, courtID int64, date schedule.Date) {
	if err := cache.Invalidate(ctx, courtID, date); err != nil {
		logger.Warn("failed to invalidate availability cache",
			"court_id", courtID, "date", date.String(), "error", err)
	}
}
