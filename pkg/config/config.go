package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/starrating/pkg/domain"
)

// propAliases maps the component prop names used by web hosts to config keys.
var propAliases = map[string]string{
	"starsLength":         "stars_length",
	"isHalfRatingEnabled": "half_rating",
	"isHoverEnabled":      "hover",
	"isReadOnly":          "read_only",
	"initialRating":       "initial_rating",
}

// Load reads a widget config file (YAML or JSON) and applies it on top of base.
// Keys may use either the snake_case config names or the component prop names.
func Load(path string, base domain.Config) (domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config: %w", err)
	}

	props := make(map[string]any)
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &props); err != nil {
			return base, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &props); err != nil {
			return base, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	return Decode(props, base)
}

// Decode applies a props bag on top of base. Only the keys present in props
// change; values are weakly typed, so "3" and 3.0 both decode into StarsLength.
// Unknown keys are rejected with domain.ErrInvalidConfig.
func Decode(props map[string]any, base domain.Config) (domain.Config, error) {
	cfg := base
	if len(props) == 0 {
		return cfg, nil
	}

	normalized := make(map[string]any, len(props))
	for k, v := range props {
		if alias, ok := propAliases[k]; ok {
			k = alias
		}
		normalized[k] = v
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return base, err
	}
	if err := decoder.Decode(normalized); err != nil {
		return base, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return cfg, nil
}
