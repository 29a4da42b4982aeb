package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/starrating/internal/presentation/tui"
	"github.com/aretw0/starrating/pkg/domain"
)

func frame(displayed float64, mode domain.Mode, fills ...float64) domain.Frame {
	return domain.Frame{Displayed: displayed, Fills: fills, Mode: mode, Color: domain.DefaultColor}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name  string
		frame domain.Frame
		want  string
	}{
		{"Empty", frame(0, domain.ModeIdle, 0, 0, 0), "☆☆☆"},
		{"Half", frame(2.5, domain.ModeIdle, 1, 1, 0.5, 0, 0), "★★⯪☆☆"},
		{"Full", frame(2, domain.ModeIdle, 1, 1), "★★"},
		{"Partial Initial", frame(1.3, domain.ModeReadOnly, 1, 0.3, 0), "★⯪☆"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tui.Row(tt.frame, termenv.Ascii))
		})
	}
}

func TestRow_Colored(t *testing.T) {
	out := tui.Row(frame(1, domain.ModeIdle, 1, 0), termenv.TrueColor)
	assert.Contains(t, out, "\x1b[", "true color profile emits escape sequences")
	assert.Contains(t, out, tui.GlyphFull)
	assert.Contains(t, out, tui.GlyphEmpty)
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "2.5/5 (preview)", tui.Caption(frame(2.5, domain.ModeHovering, 1, 1, 0.5, 0, 0)))
	assert.Equal(t, "4/5 (read-only)", tui.Caption(frame(4, domain.ModeReadOnly, 1, 1, 1, 1, 0)))
	assert.Equal(t, "0/1", tui.Caption(frame(0, domain.ModeIdle, 0)))
}

func TestSurface(t *testing.T) {
	t.Run("Lines", func(t *testing.T) {
		var buf bytes.Buffer
		s := tui.NewSurface(&buf, tui.WithProfile(termenv.Ascii))
		s.Paint(frame(1, domain.ModeIdle, 1, 0))
		s.Paint(frame(2, domain.ModeHovering, 1, 1))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "★☆  1/2", lines[0])
		assert.Equal(t, "★★  2/2 (preview)", lines[1])
	})

	t.Run("Inline", func(t *testing.T) {
		var buf bytes.Buffer
		s := tui.NewSurface(&buf, tui.WithProfile(termenv.Ascii), tui.WithInline(true))
		s.Paint(frame(1, domain.ModeIdle, 1, 0))

		assert.True(t, strings.HasPrefix(buf.String(), "\r\x1b[2K"))
		assert.NotContains(t, buf.String(), "\n")
	})
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, termenv.Ascii)
	assert.Contains(t, buf.String(), "★")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestNewRenderer(t *testing.T) {
	render, err := tui.NewRenderer("notty", 80)
	require.NoError(t, err)

	out, err := render("# Basic\n\nClick a star to rate.")
	require.NoError(t, err)
	assert.Contains(t, out, "Basic")
	assert.Contains(t, out, "Click a star to rate.")
}
