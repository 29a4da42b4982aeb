package http

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aretw0/starrating/pkg/domain"
)

// StreamManager handles active SSE connections.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan domain.RatingEvent]struct{} // WidgetID -> Set of Channels
	logger      *slog.Logger
}

// NewStreamManager creates an empty StreamManager.
func NewStreamManager(logger *slog.Logger) *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan domain.RatingEvent]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a buffered channel for the events of one widget.
// The returned cancel func is safe to call after Close.
func (sm *StreamManager) Subscribe(widgetID string) (<-chan domain.RatingEvent, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan domain.RatingEvent, 16)
	if _, ok := sm.subscribers[widgetID]; !ok {
		sm.subscribers[widgetID] = make(map[chan domain.RatingEvent]struct{})
	}
	sm.subscribers[widgetID][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[widgetID]; ok {
			if _, ok := subs[ch]; !ok {
				return
			}
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, widgetID)
			}
		}
	}
}

// Broadcast sends e to every subscriber of its widget without blocking.
func (sm *StreamManager) Broadcast(e domain.RatingEvent) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers[e.WidgetID] {
		select {
		case ch <- e:
		default:
			// Drop message if channel is full (slow client)
			sm.logger.Warn("SSE: Client buffer full, dropping event", "widget_id", e.WidgetID, "type", e.Type)
		}
	}
}

// Close ends every stream of the widget.
func (sm *StreamManager) Close(widgetID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for ch := range sm.subscribers[widgetID] {
		close(ch)
	}
	delete(sm.subscribers, widgetID)
}

// Subscribers returns the number of open streams of the widget.
func (sm *StreamManager) Subscribers(widgetID string) int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers[widgetID])
}

// Hooks returns lifecycle hooks that broadcast every event.
func (sm *StreamManager) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPreview: func(_ context.Context, e *domain.RatingEvent) { sm.Broadcast(*e) },
		OnLeave:   func(_ context.Context, e *domain.RatingEvent) { sm.Broadcast(*e) },
		OnCommit:  func(_ context.Context, e *domain.RatingEvent) { sm.Broadcast(*e) },
	}
}
