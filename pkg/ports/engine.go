package ports

import "github.com/aretw0/starrating/pkg/domain"

// Surface is a rendering surface.
// Paint is called synchronously after every event that changed what is displayed.
type Surface interface {
	Paint(frame domain.Frame)
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func(frame domain.Frame)

// Paint calls f(frame).
func (f SurfaceFunc) Paint(frame domain.Frame) {
	f(frame)
}

// Widget defines the interface a rendering surface uses to drive one widget.
// This is the primary interface used by adapters (e.g., HTTP, MCP, terminal).
type Widget interface {
	// OnPointerMove previews the rating under the pointer (visual only).
	OnPointerMove(sample domain.PointerSample)

	// OnPointerLeave drops the preview; the display reverts to the committed rating.
	OnPointerLeave()

	// OnClick commits the rating under the pointer, or clears it when it is
	// already the committed rating.
	OnClick(sample domain.PointerSample)

	// DisplayedRating returns the preview rating if set, the committed rating otherwise.
	DisplayedRating() float64

	// Snapshot returns a copy of the interaction state.
	Snapshot() domain.Snapshot

	// Frame returns what a surface should currently paint.
	Frame() domain.Frame

	// Config returns the immutable configuration.
	Config() domain.Config
}
