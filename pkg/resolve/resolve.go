package resolve

import (
	"math"

	"github.com/aretw0/starrating/pkg/domain"
)

// HalfStep is the granularity of a rating when half ratings are enabled.
const HalfStep = 0.5

// Resolve converts a pointer sample into a candidate rating.
//
// The star under the pointer selects its 1-indexed position. With half
// ratings enabled, the left half of a star (Fraction < 0.5) selects the half
// unit below; a fraction of exactly 0.5 belongs to the right half.
// A StarIndex outside the row is clamped into it.
func Resolve(sample domain.PointerSample, cfg domain.Config) float64 {
	n := max(cfg.StarsLength, 1)
	index := min(max(sample.StarIndex, 0), n-1)
	rating := float64(index + 1)

	if cfg.HalfRating && fraction(sample.Fraction) < HalfStep {
		rating -= HalfStep
	}
	return rating
}

// ClampInitial normalizes an externally supplied rating into a valid committed rating.
// The value is clamped into [0, StarsLength]; when half ratings are disabled it is
// rounded to the nearest whole unit, ties rounding up.
func ClampInitial(value float64, cfg domain.Config) float64 {
	v := Clamp(value, 0, float64(max(cfg.StarsLength, 0)))
	if !cfg.HalfRating {
		v = math.Floor(v + 0.5)
	}
	return v
}

// Clamp bounds v into [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v), v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// IsWhole reports whether v has no fractional part.
func IsWhole(v float64) bool {
	return v == math.Trunc(v)
}

func fraction(f float64) float64 {
	return Clamp(f, 0, 1)
}
