package starrating

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/starrating/internal/logging"
	"github.com/aretw0/starrating/internal/runtime"
	"github.com/aretw0/starrating/pkg/domain"
	"github.com/aretw0/starrating/pkg/ports"
)

// Widget is the high-level entry point for the starrating library.
// It wraps the internal state machine and provides a simplified API for hosts.
//
// A Widget is owned by a single logical UI thread: its handlers are
// synchronous and it holds no locks.
type Widget struct {
	machine  *runtime.Machine
	cfg      domain.Config
	id       string
	onChange func(float64)
	surface  ports.Surface
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Widget.
type Option func(*Widget)

// WithConfig replaces the whole configuration. Later options still apply on top.
func WithConfig(cfg domain.Config) Option {
	return func(w *Widget) {
		w.cfg = cfg
	}
}

// WithStarsLength sets the number of stars (default 5).
func WithStarsLength(n int) Option {
	return func(w *Widget) {
		w.cfg.StarsLength = n
	}
}

// WithHalfRating enables half-unit ratings.
func WithHalfRating(enabled bool) Option {
	return func(w *Widget) {
		w.cfg.HalfRating = enabled
	}
}

// WithHover enables or disables the hover preview (default enabled).
func WithHover(enabled bool) Option {
	return func(w *Widget) {
		w.cfg.Hover = enabled
	}
}

// WithReadOnly freezes the widget at its initial rating.
func WithReadOnly(readOnly bool) Option {
	return func(w *Widget) {
		w.cfg.ReadOnly = readOnly
	}
}

// WithInitialRating seeds the committed rating.
func WithInitialRating(rating float64) Option {
	return func(w *Widget) {
		w.cfg.InitialRating = rating
	}
}

// WithDimension sets the glyph size in rem, passed through to surfaces.
func WithDimension(rem float64) Option {
	return func(w *Widget) {
		w.cfg.Dimension = rem
	}
}

// WithColor sets the hex fill color, passed through to surfaces.
func WithColor(hex string) Option {
	return func(w *Widget) {
		w.cfg.Color = hex
	}
}

// WithOnRatingChange registers the host callback, invoked exactly once per
// accepted click with the new committed rating.
func WithOnRatingChange(fn func(rating float64)) Option {
	return func(w *Widget) {
		w.onChange = fn
	}
}

// WithSurface registers the rendering surface.
func WithSurface(s ports.Surface) Option {
	return func(w *Widget) {
		w.surface = s
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(w *Widget) {
		w.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the widget.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Widget) {
		w.logger = logger
	}
}

// WithID names the widget in events, frames and logs.
func WithID(id string) Option {
	return func(w *Widget) {
		w.id = id
	}
}

// New initializes a new Widget.
// It returns an error wrapping domain.ErrInvalidConfig when the configuration
// violates its contract; numeric ranges such as the initial rating are clamped instead.
func New(opts ...Option) (*Widget, error) {
	w := &Widget{cfg: domain.DefaultConfig()}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create widget: %w", err)
	}

	if w.logger == nil {
		w.logger = logging.NewNop()
	}

	w.machine = runtime.NewMachine(w.cfg,
		runtime.WithID(w.id),
		runtime.WithOnRatingChange(w.onChange),
		runtime.WithSurface(w.surface),
		runtime.WithLifecycleHooks(w.hooks),
		runtime.WithLogger(w.logger),
	)
	return w, nil
}

// Factory returns a widget constructor for registries such as session.Manager.
// opts apply after the per-widget config and ID.
func Factory(opts ...Option) func(id string, cfg domain.Config) (ports.Widget, error) {
	return func(id string, cfg domain.Config) (ports.Widget, error) {
		w, err := New(append([]Option{WithConfig(cfg), WithID(id)}, opts...)...)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
}

// OnPointerMove previews the rating under the pointer (visual only).
func (w *Widget) OnPointerMove(sample domain.PointerSample) {
	w.machine.OnPointerMove(sample)
}

// OnPointerLeave drops the preview rating.
func (w *Widget) OnPointerLeave() {
	w.machine.OnPointerLeave()
}

// OnClick commits the rating under the pointer, or clears it when it equals
// the committed rating.
func (w *Widget) OnClick(sample domain.PointerSample) {
	w.machine.OnClick(sample)
}

// DisplayedRating returns the preview rating if set, the committed rating otherwise.
func (w *Widget) DisplayedRating() float64 {
	return w.machine.DisplayedRating()
}

// CommittedRating returns the rating of the last accepted click.
func (w *Widget) CommittedRating() float64 {
	return w.machine.CommittedRating()
}

// PreviewRating returns the hover preview and whether one is set.
func (w *Widget) PreviewRating() (float64, bool) {
	return w.machine.PreviewRating()
}

// Mode returns the current state of the interaction state machine.
func (w *Widget) Mode() domain.Mode {
	return w.machine.Mode()
}

// Snapshot returns a copy of the interaction state.
func (w *Widget) Snapshot() domain.Snapshot {
	return w.machine.Snapshot()
}

// Frame returns what a rendering surface should currently paint.
func (w *Widget) Frame() domain.Frame {
	return w.machine.Frame()
}

// Config returns the validated configuration.
func (w *Widget) Config() domain.Config {
	return w.cfg
}

// ID returns the widget ID given with WithID.
func (w *Widget) ID() string {
	return w.id
}

var _ ports.Widget = (*Widget)(nil)
