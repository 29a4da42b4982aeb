package runtime

import (
	"log/slog"
	"time"

	"github.com/aretw0/starrating/internal/logging"
	"github.com/aretw0/starrating/pkg/domain"
	"github.com/aretw0/starrating/pkg/ports"
	"github.com/aretw0/starrating/pkg/resolve"
)

// Machine is the interaction state machine of one widget.
// It is not safe for concurrent use: every handler runs to completion on the
// caller's goroutine, and callers that share a Machine must serialize access.
type Machine struct {
	id  string
	cfg domain.Config

	committed float64
	preview   float64
	hovering  bool

	onChange func(float64)
	surface  ports.Surface
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Machine.
type Option func(*Machine)

// WithID tags events, frames and log records with a widget ID.
func WithID(id string) Option {
	return func(m *Machine) {
		m.id = id
	}
}

// WithOnRatingChange registers the host callback invoked once per accepted click.
func WithOnRatingChange(fn func(float64)) Option {
	return func(m *Machine) {
		m.onChange = fn
	}
}

// WithSurface registers the rendering surface painted after every visible change.
func WithSurface(s ports.Surface) Option {
	return func(m *Machine) {
		m.surface = s
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		if now != nil {
			m.now = now
		}
	}
}

// NewMachine creates a machine seeded from cfg.
// cfg is expected to be valid (see domain.Config.Validate); numeric ranges are clamped.
func NewMachine(cfg domain.Config, opts ...Option) *Machine {
	m := &Machine{
		cfg:    cfg,
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.committed = resolve.ClampInitial(cfg.InitialRating, cfg)
	if m.id != "" {
		m.logger = m.logger.With("widget", m.id)
	}
	return m
}

// OnPointerMove previews the rating under the pointer.
// It is a no-op in read-only mode or when hover is disabled, and it never
// reaches the host callback.
func (m *Machine) OnPointerMove(sample domain.PointerSample) {
	if !m.cfg.Previews() {
		return
	}

	candidate := resolve.Resolve(sample, m.cfg)
	if m.hovering && m.preview == candidate {
		return
	}

	m.preview = candidate
	m.hovering = true
	m.logger.Debug("preview", "rating", candidate, "star", sample.StarIndex, "fraction", sample.Fraction)

	m.emit(domain.EventPreview, candidate, m.committed, false)
	m.paint()
}

// OnPointerLeave clears the preview; the display reverts to the committed rating.
// Calling it while not hovering changes nothing.
func (m *Machine) OnPointerLeave() {
	if m.cfg.ReadOnly || !m.hovering {
		return
	}

	m.hovering = false
	m.preview = 0
	m.logger.Debug("leave", "rating", m.committed)

	m.emit(domain.EventLeave, m.committed, m.committed, false)
	m.paint()
}

// OnClick commits the rating under the pointer.
// Clicking the currently committed rating clears it to 0. The host callback is
// invoked exactly once with the new committed rating. The preview is untouched.
func (m *Machine) OnClick(sample domain.PointerSample) {
	if m.cfg.ReadOnly {
		return
	}

	previous := m.committed
	candidate := resolve.Resolve(sample, m.cfg)
	deselected := candidate == previous
	if deselected {
		m.committed = 0
	} else {
		m.committed = candidate
	}
	m.logger.Debug("commit", "rating", m.committed, "previous", previous, "deselected", deselected)

	if m.onChange != nil {
		m.onChange(m.committed)
	}
	m.emit(domain.EventCommit, m.committed, previous, deselected)
	m.paint()
}

// DisplayedRating returns the preview rating if set, the committed rating otherwise.
func (m *Machine) DisplayedRating() float64 {
	if m.hovering {
		return m.preview
	}
	return m.committed
}

// CommittedRating returns the committed rating.
func (m *Machine) CommittedRating() float64 {
	return m.committed
}

// PreviewRating returns the preview rating and whether one is set.
func (m *Machine) PreviewRating() (float64, bool) {
	return m.preview, m.hovering
}

// Mode returns the current state of the machine.
func (m *Machine) Mode() domain.Mode {
	switch {
	case m.cfg.ReadOnly:
		return domain.ModeReadOnly
	case m.hovering:
		return domain.ModeHovering
	default:
		return domain.ModeIdle
	}
}

// Snapshot returns a copy of the interaction state.
func (m *Machine) Snapshot() domain.Snapshot {
	s := domain.Snapshot{
		Committed: m.committed,
		Mode:      m.Mode(),
	}
	if m.hovering {
		p := m.preview
		s.Preview = &p
	}
	return s
}

// Frame returns what a rendering surface should currently paint.
func (m *Machine) Frame() domain.Frame {
	displayed := m.DisplayedRating()
	return domain.Frame{
		WidgetID:  m.id,
		Displayed: displayed,
		Fills:     resolve.Fills(displayed, m.cfg.StarsLength),
		Mode:      m.Mode(),
		Dimension: m.cfg.Dimension,
		Color:     m.cfg.Color,
	}
}

// Config returns the immutable configuration.
func (m *Machine) Config() domain.Config {
	return m.cfg
}

// ID returns the widget ID (may be empty).
func (m *Machine) ID() string {
	return m.id
}

var _ ports.Widget = (*Machine)(nil)
