package resolve_test

import (
	"math"
	"testing"

	"github.com/aretw0/starrating/pkg/domain"
	"github.com/aretw0/starrating/pkg/resolve"
	"github.com/stretchr/testify/assert"
)

func config(stars int, half bool) domain.Config {
	cfg := domain.DefaultConfig()
	cfg.StarsLength = stars
	cfg.HalfRating = half
	return cfg
}

func TestResolve_WholeStars(t *testing.T) {
	cfg := config(5, false)

	for i := 0; i < 5; i++ {
		for _, f := range []float64{0, 0.1, 0.49, 0.5, 0.9, 1} {
			assert.Equal(t, float64(i+1), resolve.Resolve(domain.At(i, f), cfg), "star %d fraction %v", i, f)
		}
	}
}

func TestResolve_HalfStars(t *testing.T) {
	cfg := config(5, true)

	tests := []struct {
		name   string
		sample domain.PointerSample
		want   float64
	}{
		{"Left Edge Of First Star", domain.At(0, 0), 0.5},
		{"Right Half Of First Star", domain.At(0, 0.7), 1},
		{"Left Half Of Third Star", domain.At(2, 0.2), 2.5},
		{"Right Half Of Third Star", domain.At(2, 0.9), 3},
		{"Boundary Belongs To Right Half", domain.At(2, 0.5), 3},
		{"Just Below Boundary", domain.At(2, 0.4999), 2.5},
		{"Right Edge Of Last Star", domain.At(4, 1), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve.Resolve(tt.sample, cfg))
		})
	}
}

func TestResolve_ClampsOutOfRangeSamples(t *testing.T) {
	t.Run("Star Index", func(t *testing.T) {
		cfg := config(5, false)
		assert.Equal(t, 1.0, resolve.Resolve(domain.At(-3, 0.5), cfg))
		assert.Equal(t, 5.0, resolve.Resolve(domain.At(99, 0.5), cfg))
	})

	t.Run("Fraction", func(t *testing.T) {
		cfg := config(5, true)
		assert.Equal(t, 1.5, resolve.Resolve(domain.At(1, -2), cfg))
		assert.Equal(t, 2.0, resolve.Resolve(domain.At(1, 7), cfg))
		assert.Equal(t, 1.5, resolve.Resolve(domain.At(1, math.NaN()), cfg))
	})
}

func TestResolve_RangeAndGranularity(t *testing.T) {
	for stars := 1; stars <= 10; stars++ {
		for _, half := range []bool{false, true} {
			cfg := config(stars, half)
			lo := 1.0
			if half {
				lo = 0.5
			}
			for i := -1; i <= stars; i++ {
				for f := 0.0; f <= 1.0; f += 0.05 {
					got := resolve.Resolve(domain.At(i, f), cfg)
					assert.GreaterOrEqual(t, got, lo)
					assert.LessOrEqual(t, got, float64(stars))
					if !half {
						assert.True(t, resolve.IsWhole(got), "got %v", got)
					} else {
						assert.True(t, resolve.IsWhole(got*2), "got %v", got)
					}
				}
			}
		}
	}
}

func TestClampInitial(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		half  bool
		want  float64
	}{
		{"Above Range", 7, false, 5},
		{"Below Range", -2, false, 0},
		{"In Range Whole", 3, false, 3},
		{"Rounds Down", 2.4, false, 2},
		{"Ties Round Up", 2.5, false, 3},
		{"Keeps Half When Enabled", 3.5, true, 3.5},
		{"Keeps Unsnapped Value When Half Enabled", 3.3, true, 3.3},
		{"Above Range With Half", 5.5, true, 5},
		{"NaN", math.NaN(), false, 0},
		{"Positive Infinity", math.Inf(1), false, 5},
		{"Negative Infinity", math.Inf(-1), true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve.ClampInitial(tt.value, config(5, tt.half)))
		})
	}
}

func TestClampInitial_Properties(t *testing.T) {
	values := []float64{-100, -1, -0.5, 0, 0.25, 0.5, 1.49, 1.5, 4.99, 5, 5.01, 6, 1e9}

	for stars := 1; stars <= 10; stars++ {
		for _, v := range values {
			whole := resolve.ClampInitial(v, config(stars, false))
			assert.GreaterOrEqual(t, whole, 0.0)
			assert.LessOrEqual(t, whole, float64(stars))
			assert.True(t, resolve.IsWhole(whole), "stars=%d value=%v got=%v", stars, v, whole)

			half := resolve.ClampInitial(v, config(stars, true))
			assert.GreaterOrEqual(t, half, 0.0)
			assert.LessOrEqual(t, half, float64(stars))
		}
	}
}

func TestFills(t *testing.T) {
	assert.Equal(t, []float64{1, 1, 0.5, 0, 0}, resolve.Fills(2.5, 5))
	assert.Equal(t, []float64{1, 1, 1}, resolve.Fills(3, 3))
	assert.Equal(t, []float64{0, 0}, resolve.Fills(0, 2))
	assert.Nil(t, resolve.Fills(1, 0))
	assert.Equal(t, 0.0, resolve.Fill(2, 4))
}
