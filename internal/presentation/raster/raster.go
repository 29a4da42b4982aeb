// Package raster renders widget frames as PNG images with gg.
package raster

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/aretw0/starrating/pkg/domain"
	"github.com/aretw0/starrating/pkg/layout"
)

// EmptyColor paints the unfilled part of every glyph.
const EmptyColor = "#D3D3D3"

const (
	// MaxScale bounds the pixels per rem accepted by Draw.
	MaxScale = 256.0

	// MaxCanvasSide bounds both canvas dimensions, in pixels.
	MaxCanvasSide = 8192
)

// Options controls image size.
type Options struct {
	PxPerRem   float64 // Pixels per rem (default layout.PixelsPerRem)
	Background string  // Hex background; empty means transparent
}

// Option configures Render.
type Option func(*Options)

// WithScale sets the number of pixels per rem.
func WithScale(pxPerRem float64) Option {
	return func(o *Options) {
		o.PxPerRem = pxPerRem
	}
}

// WithBackground paints the canvas with a solid color first.
func WithBackground(hex string) Option {
	return func(o *Options) {
		o.Background = hex
	}
}

// Canvas holds a drawn frame. Close releases its resources.
type Canvas struct {
	ctx *gg.Context
	Row layout.Row
}

// Draw paints frame on a new canvas.
// Partially filled stars are painted twice: the empty shape, then the colored
// shape clipped to the fill fraction of the glyph box.
func Draw(frame domain.Frame, opts ...Option) (*Canvas, error) {
	o := Options{PxPerRem: layout.PixelsPerRem}
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.PxPerRem) || o.PxPerRem <= 0 || o.PxPerRem > MaxScale {
		return nil, fmt.Errorf("invalid scale: %v (must be in (0, %v])", o.PxPerRem, MaxScale)
	}
	if len(frame.Fills) == 0 {
		return nil, fmt.Errorf("empty canvas: no stars")
	}

	row := layout.Scaled(len(frame.Fills), frame.Dimension, o.PxPerRem)
	pad := row.Gap
	row.X, row.Y = pad, pad

	fw, fh := math.Ceil(row.Width()+2*pad), math.Ceil(row.Height()+2*pad)
	if !inCanvas(fw) || !inCanvas(fh) {
		return nil, fmt.Errorf("invalid canvas size: %vx%v px (must be in [1, %d] per side)", fw, fh, MaxCanvasSide)
	}
	w, h := int(fw), int(fh)

	dc := gg.NewContext(w, h)
	if o.Background != "" {
		dc.ClearWithColor(gg.Hex(o.Background))
	} else {
		dc.ClearWithColor(gg.Transparent)
	}

	for i, fill := range frame.Fills {
		box := row.Bounds(i)
		star := layout.GlyphStar(box)

		if fill < 1 {
			tracePath(dc, star)
			dc.SetHexColor(EmptyColor)
			if err := dc.Fill(); err != nil {
				dc.Close()
				return nil, fmt.Errorf("fill star %d: %w", i, err)
			}
		}
		if fill > 0 {
			dc.Push()
			dc.ClipRect(box.X, box.Y, box.Width*fill, box.Height)
			tracePath(dc, star)
			dc.SetHexColor(frame.Color)
			err := dc.Fill()
			dc.Pop()
			if err != nil {
				dc.Close()
				return nil, fmt.Errorf("fill star %d: %w", i, err)
			}
		}
	}

	return &Canvas{ctx: dc, Row: row}, nil
}

func inCanvas(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 1 && v <= MaxCanvasSide
}

// Render draws frame and encodes it as PNG into w.
func Render(w io.Writer, frame domain.Frame, opts ...Option) error {
	c, err := Draw(frame, opts...)
	if err != nil {
		return err
	}
	defer c.Close()
	return c.EncodePNG(w)
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.ctx.EncodePNG(w)
}

// Width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.ctx.Width()
}

// Height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.ctx.Height()
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.ctx.Close()
}

func tracePath(dc *gg.Context, points []layout.Point) {
	for i, p := range points {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
			continue
		}
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
}
