package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/aretw0/starrating/pkg/domain"
)

// Loader implements ports.PresetLoader using an in-memory map.
type Loader struct {
	presets map[string]domain.Preset
}

// NewLoader creates a new Loader holding the given presets.
// Presets without an ID or with an invalid config are rejected.
func NewLoader(presets ...domain.Preset) (*Loader, error) {
	m := make(map[string]domain.Preset, len(presets))
	for _, p := range presets {
		if p.ID == "" {
			return nil, fmt.Errorf("preset missing ID")
		}
		if _, dup := m[p.ID]; dup {
			return nil, fmt.Errorf("duplicate preset ID: %s", p.ID)
		}
		if err := p.Config.Validate(); err != nil {
			return nil, fmt.Errorf("preset %s: %w", p.ID, err)
		}
		m[p.ID] = p
	}
	return &Loader{presets: m}, nil
}

// GetPreset retrieves a preset by ID.
func (l *Loader) GetPreset(_ context.Context, id string) (domain.Preset, error) {
	p, ok := l.presets[id]
	if !ok {
		return domain.Preset{}, fmt.Errorf("%w: %s", domain.ErrPresetNotFound, id)
	}
	return p, nil
}

// ListPresets returns all presets sorted by ID.
func (l *Loader) ListPresets(_ context.Context) ([]domain.Preset, error) {
	keys := make([]string, 0, len(l.presets))
	for k := range l.presets {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order

	out := make([]domain.Preset, 0, len(keys))
	for _, k := range keys {
		out = append(out, l.presets[k])
	}
	return out, nil
}
