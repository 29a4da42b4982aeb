package svg_test

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/starrating/internal/presentation/svg"
	"github.com/aretw0/starrating/pkg/domain"
)

type document struct {
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Label  string `xml:"aria-label,attr"`
	Stops  []struct {
		Offset string `xml:"offset,attr"`
		Color  string `xml:"stop-color,attr"`
	} `xml:"defs>linearGradient>stop"`
	Paths []struct {
		D    string `xml:"d,attr"`
		Fill string `xml:"fill,attr"`
	} `xml:"path"`
}

func TestRender(t *testing.T) {
	frame := domain.Frame{
		WidgetID:  "w1",
		Displayed: 2.5,
		Fills:     []float64{1, 1, 0.5, 0, 0},
		Dimension: 2,
		Color:     "#FFD700",
	}

	var doc document
	require.NoError(t, xml.Unmarshal([]byte(svg.String(frame)), &doc))

	// 5 stars of 32px with a 4px gap
	assert.Equal(t, "176", doc.Width)
	assert.Equal(t, "32", doc.Height)
	assert.Equal(t, "Rating 2.5 of 5", doc.Label)

	require.Len(t, doc.Paths, 5)
	assert.Equal(t, "url(#star-fill-w1-2)", doc.Paths[2].Fill)
	assert.True(t, strings.HasPrefix(doc.Paths[0].D, "M16 "), "first vertex is the top point of the first star")
	assert.True(t, strings.HasSuffix(doc.Paths[0].D, "Z"))

	require.Len(t, doc.Stops, 10)
	assert.Equal(t, "100%", doc.Stops[0].Offset)
	assert.Equal(t, "50%", doc.Stops[4].Offset)
	assert.Equal(t, "#FFD700", doc.Stops[4].Color)
	assert.Equal(t, svg.EmptyColor, doc.Stops[5].Color)
	assert.Equal(t, "0%", doc.Stops[6].Offset)
}

func TestRender_NoWidgetID(t *testing.T) {
	out := svg.String(domain.Frame{Fills: []float64{1}, Dimension: 1, Color: "#000000"})
	assert.Contains(t, out, `id="star-fill-0"`)
	assert.Contains(t, out, `fill="url(#star-fill-0)"`)
}
