package domain

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultStarsLength = 5
	DefaultDimension   = 2.0 // rem
	DefaultColor       = "#FFD700"

	MaxStarsLength = 100
	MaxDimension   = 100.0 // rem
)

// Config is the immutable configuration of a single widget.
// It is supplied once at construction and passed around by value.
type Config struct {
	// StarsLength is the number of stars in the row.
	StarsLength int `json:"stars_length" yaml:"stars_length" mapstructure:"stars_length"`

	// HalfRating allows ratings on half-unit boundaries.
	HalfRating bool `json:"half_rating" yaml:"half_rating" mapstructure:"half_rating"`

	// Hover enables the live preview while the pointer moves over the row.
	Hover bool `json:"hover" yaml:"hover" mapstructure:"hover"`

	// ReadOnly freezes the committed rating; every input becomes a no-op.
	ReadOnly bool `json:"read_only" yaml:"read_only" mapstructure:"read_only"`

	// InitialRating seeds the committed rating. It is clamped (and rounded
	// when half ratings are disabled) at construction time.
	InitialRating float64 `json:"initial_rating" yaml:"initial_rating" mapstructure:"initial_rating"`

	// Dimension is the glyph size in rem. Visual only.
	Dimension float64 `json:"dimension" yaml:"dimension" mapstructure:"dimension"`

	// Color is the fill color in hex notation. Visual only.
	Color string `json:"color" yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() Config {
	return Config{
		StarsLength: DefaultStarsLength,
		Hover:       true,
		Dimension:   DefaultDimension,
		Color:       DefaultColor,
	}
}

// Validate reports construction-time contract violations.
// Numeric ranges that can be clamped (like InitialRating) are not errors.
func (c Config) Validate() error {
	if c.StarsLength <= 0 || c.StarsLength > MaxStarsLength {
		return fmt.Errorf("%w: stars length must be in [1, %d], got %d", ErrInvalidConfig, MaxStarsLength, c.StarsLength)
	}
	if math.IsNaN(c.Dimension) || c.Dimension <= 0 || c.Dimension > MaxDimension {
		return fmt.Errorf("%w: dimension must be in (0, %v] rem, got %v", ErrInvalidConfig, MaxDimension, c.Dimension)
	}
	if _, err := colorful.Hex(c.Color); err != nil {
		return fmt.Errorf("%w: color %q is not a hex color", ErrInvalidConfig, c.Color)
	}
	return nil
}

// MaxRating is the upper bound of every rating the widget can hold.
func (c Config) MaxRating() float64 {
	return float64(c.StarsLength)
}

// Interactive reports whether input can ever mutate the widget.
func (c Config) Interactive() bool {
	return !c.ReadOnly
}

// Previews reports whether pointer movement produces a preview rating.
func (c Config) Previews() bool {
	return c.Hover && !c.ReadOnly
}
