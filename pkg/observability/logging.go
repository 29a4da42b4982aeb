package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/starrating/pkg/domain"
)

// LoggingHooks returns lifecycle hooks that write one structured record per event.
// Previews are logged at debug level since they fire on every pointer move.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPreview: func(ctx context.Context, e *domain.RatingEvent) {
			logger.DebugContext(ctx, "rating_preview", "widget_id", e.WidgetID, "rating", e.Rating)
		},
		OnLeave: func(ctx context.Context, e *domain.RatingEvent) {
			logger.DebugContext(ctx, "rating_leave", "widget_id", e.WidgetID, "rating", e.Rating)
		},
		OnCommit: func(ctx context.Context, e *domain.RatingEvent) {
			logger.InfoContext(ctx, "rating_commit",
				"widget_id", e.WidgetID,
				"rating", e.Rating,
				"previous", e.Previous,
				"deselected", e.Deselected,
			)
		},
	}
}
