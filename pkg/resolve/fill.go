package resolve

// Fill returns how much of glyph index is filled for a displayed rating:
// 1 for full, 0.5 for half, 0 for empty (any value in between for
// unsnapped ratings).
func Fill(displayed float64, index int) float64 {
	return Clamp(displayed-float64(index), 0, 1)
}

// Fills returns the fill of every glyph in a row of n stars.
func Fills(displayed float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	fills := make([]float64, n)
	for i := range fills {
		fills[i] = Fill(displayed, i)
	}
	return fills
}
