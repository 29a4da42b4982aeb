package domain

// Frame is everything a rendering surface needs to paint the row.
// Glyph i is filled to Fills[i], a value in [0, 1].
type Frame struct {
	WidgetID  string    `json:"widget_id,omitempty"`
	Displayed float64   `json:"displayed"`
	Fills     []float64 `json:"fills"`
	Mode      Mode      `json:"mode"`
	Dimension float64   `json:"dimension"`
	Color     string    `json:"color"`
}
