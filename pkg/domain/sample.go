package domain

// PointerSample is an ephemeral pointer position delivered by a rendering surface.
// It is never stored by the state machine.
type PointerSample struct {
	// StarIndex is the zero-based index of the star under the pointer.
	StarIndex int `json:"star_index"`

	// Fraction is the horizontal position inside that star's bounding box
	// (0 = left edge, 1 = right edge).
	Fraction float64 `json:"fraction"`
}

// At is a shorthand for building a PointerSample.
func At(starIndex int, fraction float64) PointerSample {
	return PointerSample{StarIndex: starIndex, Fraction: fraction}
}
