// Package layout lays out a linear row of star glyphs and translates device
// coordinates into pointer samples.
package layout

import (
	"math"

	"github.com/aretw0/starrating/pkg/domain"
)

// PixelsPerRem converts a widget dimension (rem) into pixels.
const PixelsPerRem = 16.0

// HitRect is an axis-aligned rectangle in device coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle. Edges are inclusive.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Row is a left-to-right row of square glyphs.
type Row struct {
	X, Y  float64 // Top-left corner of the first glyph
	Count int
	Size  float64 // Glyph edge length
	Gap   float64 // Horizontal space between glyphs
}

// FromDimension builds a row of n glyphs at the origin for a dimension in rem.
func FromDimension(n int, dimension float64) Row {
	return Scaled(n, dimension, PixelsPerRem)
}

// Scaled is FromDimension with a custom rem size in pixels.
func Scaled(n int, dimension, pxPerRem float64) Row {
	size := dimension * pxPerRem
	return Row{Count: n, Size: size, Gap: size / 8}
}

// Width is the total horizontal extent of the row.
func (r Row) Width() float64 {
	if r.Count <= 0 {
		return 0
	}
	return float64(r.Count)*r.Size + float64(r.Count-1)*r.Gap
}

// Height is the vertical extent of the row.
func (r Row) Height() float64 {
	return r.Size
}

// Bounds returns the bounding box of glyph i.
func (r Row) Bounds(i int) HitRect {
	return HitRect{
		X:      r.X + float64(i)*(r.Size+r.Gap),
		Y:      r.Y,
		Width:  r.Size,
		Height: r.Size,
	}
}

// Sample hit-tests a device point against the row.
// It returns false when the point is outside every glyph (including the gaps).
func (r Row) Sample(x, y float64) (domain.PointerSample, bool) {
	if r.Count <= 0 || r.Size <= 0 || math.IsNaN(x) || math.IsNaN(y) {
		return domain.PointerSample{}, false
	}

	pitch := r.Size + r.Gap
	i := int(math.Floor((x - r.X) / pitch))
	if i < 0 || i >= r.Count {
		return domain.PointerSample{}, false
	}

	box := r.Bounds(i)
	if !box.Contains(x, y) {
		return domain.PointerSample{}, false
	}
	return domain.PointerSample{
		StarIndex: i,
		Fraction:  (x - box.X) / box.Width,
	}, true
}

// Point is a 2D point in device coordinates.
type Point struct {
	X, Y float64
}

// StarPoints returns the vertices of a star polygon centered at (cx, cy).
// Vertices alternate between the outer and inner radius, starting at the top.
func StarPoints(cx, cy, outer, inner float64, points int) []Point {
	if points < 2 {
		return nil
	}
	step := math.Pi / float64(points)
	start := -math.Pi / 2

	vertices := make([]Point, 0, points*2)
	for i := 0; i < points*2; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		angle := start + step*float64(i)
		vertices = append(vertices, Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		})
	}
	return vertices
}

// GlyphStar returns the five-pointed star inscribed in glyph box b.
func GlyphStar(b HitRect) []Point {
	outer := b.Width / 2
	return StarPoints(b.X+b.Width/2, b.Y+b.Height/2+outer*0.05, outer, outer*0.4, 5)
}
