package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/aretw0/starrating/pkg/domain"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "STARRATING_"

var envKeys = map[string]string{
	"STARS_LENGTH":   "stars_length",
	"HALF_RATING":    "half_rating",
	"HOVER":          "hover",
	"READ_ONLY":      "read_only",
	"INITIAL_RATING": "initial_rating",
	"DIMENSION":      "dimension",
	"COLOR":          "color",
}

// FromEnv overlays STARRATING_* variables on top of base.
func FromEnv(base domain.Config) (domain.Config, error) {
	props := make(map[string]any)
	for suffix, key := range envKeys {
		if v, ok := os.LookupEnv(EnvPrefix + suffix); ok {
			props[key] = v
		}
	}
	return Decode(props, base)
}

// LoadDotEnv loads variables from the given .env files without overriding the
// ones already set. With no arguments it loads ./.env if it exists.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(".env"); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		paths = []string{".env"}
	}
	return godotenv.Load(paths...)
}
