// Package tui paints widgets on a terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/starrating/pkg/domain"
)

const (
	GlyphFull    = "★"
	GlyphPartial = "⯪"
	GlyphEmpty   = "☆"

	emptyColor = "#808080"
)

// Glyph returns the glyph for a fill fraction in [0, 1].
func Glyph(fill float64) string {
	switch {
	case fill >= 1:
		return GlyphFull
	case fill <= 0:
		return GlyphEmpty
	default:
		return GlyphPartial
	}
}

// Row renders the glyph row of a frame, e.g. "★★⯪☆☆".
func Row(frame domain.Frame, p termenv.Profile) string {
	var b strings.Builder
	for _, fill := range frame.Fills {
		g := Glyph(fill)
		color := frame.Color
		if fill <= 0 {
			color = emptyColor
		}
		b.WriteString(p.String(g).Foreground(p.Color(color)).String())
	}
	return b.String()
}

// Caption describes the displayed rating, e.g. "2.5/5 (preview)".
func Caption(frame domain.Frame) string {
	caption := fmt.Sprintf("%s/%d", FormatRating(frame.Displayed), len(frame.Fills))
	switch frame.Mode {
	case domain.ModeHovering:
		caption += " (preview)"
	case domain.ModeReadOnly:
		caption += " (read-only)"
	}
	return caption
}

// Line is the row followed by its caption.
func Line(frame domain.Frame, p termenv.Profile) string {
	return Row(frame, p) + "  " + Caption(frame)
}

// FormatRating prints whole ratings without decimals and half ratings with one.
func FormatRating(r float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", r), ".0")
}
