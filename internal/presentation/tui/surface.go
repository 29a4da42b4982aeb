package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/aretw0/starrating/pkg/domain"
)

// Surface paints frames as text lines.
// Inline surfaces redraw the current terminal line instead of appending one.
type Surface struct {
	out     io.Writer
	profile termenv.Profile
	inline  bool
}

// SurfaceOption configures a Surface.
type SurfaceOption func(*Surface)

// WithProfile overrides the detected color profile.
func WithProfile(p termenv.Profile) SurfaceOption {
	return func(s *Surface) {
		s.profile = p
	}
}

// WithInline makes the surface redraw a single line.
func WithInline(inline bool) SurfaceOption {
	return func(s *Surface) {
		s.inline = inline
	}
}

// NewSurface creates a Surface writing to w.
func NewSurface(w io.Writer, opts ...SurfaceOption) *Surface {
	s := &Surface{out: w, profile: termenv.ColorProfile()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Paint implements ports.Surface.
func (s *Surface) Paint(frame domain.Frame) {
	if s.inline {
		// Carriage return + erase line (CSI 2K)
		fmt.Fprintf(s.out, "\r%s2K%s", termenv.CSI, Line(frame, s.profile))
		return
	}
	fmt.Fprintln(s.out, Line(frame, s.profile))
}
