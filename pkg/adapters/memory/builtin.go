package memory

import "github.com/aretw0/starrating/pkg/domain"

func preset(id, title, description string, edit func(*domain.Config)) domain.Preset {
	cfg := domain.DefaultConfig()
	edit(&cfg)
	return domain.Preset{ID: id, Title: title, Description: description, Config: cfg}
}

// BuiltinPresets returns the stock demo configurations.
func BuiltinPresets() []domain.Preset {
	return []domain.Preset{
		preset("basic", "Basic",
			"Default settings. Click a star to rate, hover to preview.",
			func(c *domain.Config) {}),
		preset("half-star-rating", "Half Star Rating",
			"Half-star precision. The left half of a star selects the half value, the right half the full value.",
			func(c *domain.Config) {
				c.HalfRating = true
				c.InitialRating = 3.5
			}),
		preset("custom-styled-red", "Custom Styled Red",
			"Ten small red stars, for warning style indicators.",
			func(c *domain.Config) {
				c.StarsLength = 10
				c.InitialRating = 5
				c.Dimension = 20
				c.Color = "#FF5733"
			}),
		preset("custom-styled-green", "Custom Styled Green",
			"Ten large green stars, for positive feedback.",
			func(c *domain.Config) {
				c.StarsLength = 10
				c.InitialRating = 3
				c.Dimension = 40
				c.Color = "#2ECC71"
			}),
		preset("custom-styled-blue", "Custom Styled Blue",
			"A three-star scale in blue, for quick satisfaction surveys.",
			func(c *domain.Config) {
				c.StarsLength = 3
				c.InitialRating = 1
				c.Dimension = 45
				c.Color = "#3498DB"
			}),
		preset("single-large-star", "Single Large Star",
			"One star that toggles on and off, for likes and favorites.",
			func(c *domain.Config) {
				c.StarsLength = 1
				c.InitialRating = 1
				c.Dimension = 30
				c.Color = "#9B59B6"
				c.Hover = false
			}),
		preset("read-only", "Read Only",
			"Display-only rating, for averages and historical data.",
			func(c *domain.Config) {
				c.InitialRating = 4
				c.ReadOnly = true
			}),
		preset("disabled-hover", "Disabled Hover",
			"No hover preview. The row only changes on click.",
			func(c *domain.Config) {
				c.InitialRating = 3
				c.Hover = false
			}),
	}
}

// NewBuiltin returns a Loader holding BuiltinPresets.
func NewBuiltin() *Loader {
	l, err := NewLoader(BuiltinPresets()...)
	if err != nil {
		panic(err) // stock presets are static and valid
	}
	return l
}
