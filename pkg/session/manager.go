package session

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/aretw0/starrating/internal/logging"
	"github.com/aretw0/starrating/pkg/domain"
	"github.com/aretw0/starrating/pkg/ports"
)

// Factory builds a widget for a newly registered ID.
type Factory func(id string, cfg domain.Config) (ports.Widget, error)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates widget access, ensuring safe concurrent operations.
// It uses Reference Counting to garbage collect unused locks.
type Manager struct {
	factory Factory

	mu      sync.Mutex // Global lock for both maps
	widgets map[string]ports.Widget
	locks   map[string]*lockEntry

	newID  func() string
	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithIDGenerator overrides the random UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		m.newID = fn
	}
}

// NewManager creates a new Manager that builds widgets with factory.
func NewManager(factory Factory, opts ...Option) *Manager {
	m := &Manager{
		factory: factory,
		widgets: make(map[string]ports.Widget),
		locks:   make(map[string]*lockEntry),
		newID:   uuid.NewString,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(id) after unlocking.
func (m *Manager) acquire(id string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		entry = &lockEntry{}
		m.locks[id] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, id)
	}
}

func (m *Manager) lookup(id string) (ports.Widget, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.widgets[id]
	return w, ok
}

// Create validates cfg, builds a widget and registers it under a fresh ID.
func (m *Manager) Create(ctx context.Context, cfg domain.Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	id := m.newID()
	w, err := m.factory(id, cfg)
	if err != nil {
		return "", fmt.Errorf("failed to build widget: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.widgets[id]; exists {
		return "", fmt.Errorf("widget id collision: %s", id)
	}
	m.widgets[id] = w

	m.logger.Debug("widget created", "widget_id", id, "stars", cfg.StarsLength)
	return id, nil
}

// Get returns the widget registered under id.
// Callers that drive the widget must use WithLock instead.
func (m *Manager) Get(ctx context.Context, id string) (ports.Widget, error) {
	w, ok := m.lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrWidgetNotFound, id)
	}
	return w, nil
}

// Delete removes the widget from the registry.
func (m *Manager) Delete(ctx context.Context, id string) error {
	return m.WithLock(ctx, id, func(ctx context.Context, _ ports.Widget) error {
		m.mu.Lock()
		delete(m.widgets, id)
		m.mu.Unlock()

		m.logger.Debug("widget deleted", "widget_id", id)
		return nil
	})
}

// List returns the registered IDs in lexical order.
func (m *Manager) List(ctx context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.widgets))
	for id := range m.widgets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// WithLock executes fn while holding the lock for the widget.
// It returns domain.ErrWidgetNotFound if the ID is unknown or was deleted
// while waiting for the lock.
func (m *Manager) WithLock(ctx context.Context, id string, fn func(context.Context, ports.Widget) error) error {
	entry := m.acquire(id)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(id)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	w, ok := m.lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrWidgetNotFound, id)
	}
	return fn(ctx, w)
}
