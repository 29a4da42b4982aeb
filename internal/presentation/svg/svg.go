// Package svg renders widget frames as standalone SVG documents.
package svg

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/starrating/pkg/domain"
	"github.com/aretw0/starrating/pkg/layout"
)

// EmptyColor paints the unfilled part of every glyph.
const EmptyColor = "#D3D3D3"

// Render writes the SVG markup of frame to w.
// Each star is a path filled through a horizontal linearGradient whose hard
// stop sits at the glyph's fill fraction.
func Render(w io.Writer, frame domain.Frame) error {
	row := layout.FromDimension(len(frame.Fills), frame.Dimension)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s" role="img" aria-label="%s">`,
		num(row.Width()), num(row.Height()), num(row.Width()), num(row.Height()), label(frame))
	b.WriteString("\n<defs>\n")
	for i, fill := range frame.Fills {
		offset := num(fill * 100)
		fmt.Fprintf(&b, `<linearGradient id="%s"><stop offset="%s%%" stop-color="%s"/><stop offset="%s%%" stop-color="%s"/></linearGradient>`,
			gradientID(frame, i), offset, frame.Color, offset, EmptyColor)
		b.WriteString("\n")
	}
	b.WriteString("</defs>\n")

	for i := range frame.Fills {
		fmt.Fprintf(&b, `<path d="%s" fill="url(#%s)" stroke="%s" stroke-width="1" data-star="%d"/>`,
			pathData(layout.GlyphStar(row.Bounds(i))), gradientID(frame, i), frame.Color, i)
		b.WriteString("\n")
	}
	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// String is Render into a string.
func String(frame domain.Frame) string {
	var b strings.Builder
	_ = Render(&b, frame)
	return b.String()
}

func gradientID(frame domain.Frame, i int) string {
	if frame.WidgetID == "" {
		return fmt.Sprintf("star-fill-%d", i)
	}
	return fmt.Sprintf("star-fill-%s-%d", frame.WidgetID, i)
}

func label(frame domain.Frame) string {
	return fmt.Sprintf("Rating %s of %d", num(frame.Displayed), len(frame.Fills))
}

func pathData(points []layout.Point) string {
	var b strings.Builder
	for i, p := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&b, "%s%s %s ", cmd, num(p.X), num(p.Y))
	}
	b.WriteString("Z")
	return b.String()
}

// num formats coordinates with at most two decimals.
func num(v float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.2f", v), "0")
	return strings.TrimSuffix(s, ".")
}
