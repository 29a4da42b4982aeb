package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventPreview EventType = "preview"
	EventLeave   EventType = "leave"
	EventCommit  EventType = "commit"
)

// RatingEvent describes one accepted transition of a widget.
type RatingEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	WidgetID  string    `json:"widget_id,omitempty"`

	// Rating is the preview rating for EventPreview and the new committed
	// rating for EventCommit. For EventLeave it is the committed rating the
	// display reverts to.
	Rating float64 `json:"rating"`

	// Previous is the committed rating before a commit.
	Previous float64 `json:"previous"`

	// Deselected is true when a click hit the committed rating and cleared it.
	Deselected bool `json:"deselected,omitempty"`
}

// LifecycleHooks defines callbacks for widget observability.
// They are never invoked for no-op events (read-only input, disabled hover).
type LifecycleHooks struct {
	OnPreview func(context.Context, *RatingEvent)
	OnLeave   func(context.Context, *RatingEvent)
	OnCommit  func(context.Context, *RatingEvent)
}

// Merge returns hooks that invoke h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnPreview: chain(h.OnPreview, other.OnPreview),
		OnLeave:   chain(h.OnLeave, other.OnLeave),
		OnCommit:  chain(h.OnCommit, other.OnCommit),
	}
}

func chain(a, b func(context.Context, *RatingEvent)) func(context.Context, *RatingEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *RatingEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
