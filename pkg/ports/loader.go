package ports

import (
	"context"

	"github.com/aretw0/starrating/pkg/domain"
)

// PresetLoader defines how named widget configurations are retrieved.
// This allows the catalog (Loam directory, built-in memory) to be decoupled.
type PresetLoader interface {
	// GetPreset retrieves a preset by ID.
	// It returns an error wrapping domain.ErrPresetNotFound when the ID is unknown.
	GetPreset(ctx context.Context, id string) (domain.Preset, error)

	// ListPresets returns every preset of the catalog, sorted by ID.
	ListPresets(ctx context.Context) ([]domain.Preset, error)
}
