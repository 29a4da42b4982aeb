package cli

import (
	"context"
	"fmt"

	loamadapter "github.com/aretw0/starrating/pkg/adapters/loam"
	"github.com/aretw0/starrating/pkg/adapters/memory"
	"github.com/aretw0/starrating/pkg/config"
	"github.com/aretw0/starrating/pkg/domain"
	"github.com/aretw0/starrating/pkg/ports"
)

// Settings collects the configuration sources of a CLI invocation.
type Settings struct {
	// ConfigPath is an optional YAML or JSON widget config file.
	ConfigPath string

	// Preset names a catalog entry used as the starting point.
	Preset string

	// PresetsDir switches the catalog from the built-in presets to a directory.
	PresetsDir string

	// EnvFiles are loaded before STARRATING_* variables are read.
	// Empty means ./.env when present.
	EnvFiles []string

	// Overrides holds explicitly set flags, keyed by config key.
	Overrides map[string]any
}

// Catalog opens the preset catalog selected by dir.
func Catalog(dir string) (ports.PresetLoader, error) {
	if dir == "" {
		return memory.NewBuiltin(), nil
	}
	loader, err := loamadapter.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open presets directory %q: %w", dir, err)
	}
	return loader, nil
}

// ResolveConfig layers defaults < preset < file < env < flags.
func ResolveConfig(ctx context.Context, s Settings, presets ports.PresetLoader) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if s.Preset != "" {
		if presets == nil {
			return cfg, fmt.Errorf("preset %q requested without a catalog: %w", s.Preset, domain.ErrPresetNotFound)
		}
		p, err := presets.GetPreset(ctx, s.Preset)
		if err != nil {
			return cfg, err
		}
		cfg = p.Config
	}

	var err error
	if s.ConfigPath != "" {
		if cfg, err = config.Load(s.ConfigPath, cfg); err != nil {
			return cfg, err
		}
	}

	if err := config.LoadDotEnv(s.EnvFiles...); err != nil {
		return cfg, fmt.Errorf("failed to load env file: %w", err)
	}
	if cfg, err = config.FromEnv(cfg); err != nil {
		return cfg, err
	}

	if len(s.Overrides) > 0 {
		if cfg, err = config.Decode(s.Overrides, cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, cfg.Validate()
}
