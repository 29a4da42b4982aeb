package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the starrating banner to w.
func PrintBanner(w io.Writer, p termenv.Profile) {
	// Warm gradient from gold to orange
	lines := []struct {
		text, color string
	}{
		{"   ★  ___ _                    _   _           ", "#fde047"},
		{"     / __| |_ __ _ _ _ _ _ __ _| |_(_)_ _  __ _ ", "#facc15"},
		{"     \\__ \\  _/ _` | '_| '_/ _` |  _| | ' \\/ _` |", "#f59e0b"},
		{"     |___/\\__\\__,_|_| |_| \\__,_|\\__|_|_||_\\__, |", "#f97316"},
		{"                                          |___/ ", "#ea580c"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
