package tests

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/aretw0/starrating/pkg/domain"
	"github.com/aretw0/starrating/pkg/ports"
)

// PresetLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.PresetLoader.
// expected maps every preset ID the catalog must hold to its configuration.
func PresetLoaderContractTest(t *testing.T, loader ports.PresetLoader, expected map[string]domain.Config) {
	t.Helper()
	ctx := context.Background()

	// 1. Test GetPreset (Success)
	t.Run("GetPreset_Success", func(t *testing.T) {
		for id, want := range expected {
			preset, err := loader.GetPreset(ctx, id)
			if err != nil {
				t.Fatalf("unexpected error getting preset %s: %v", id, err)
			}
			if preset.ID != id {
				t.Errorf("id mismatch: got %q, want %q", preset.ID, id)
			}
			if preset.Config != want {
				t.Errorf("config mismatch for %s. got %+v, want %+v", id, preset.Config, want)
			}
			if err := preset.Config.Validate(); err != nil {
				t.Errorf("preset %s holds an invalid config: %v", id, err)
			}
		}
	})

	// 2. Test GetPreset (NotFound)
	t.Run("GetPreset_NotFound", func(t *testing.T) {
		_, err := loader.GetPreset(ctx, "non-existent-preset")
		if !errors.Is(err, domain.ErrPresetNotFound) {
			t.Errorf("expected ErrPresetNotFound, got %v", err)
		}
	})

	// 3. Test ListPresets
	t.Run("ListPresets", func(t *testing.T) {
		presets, err := loader.ListPresets(ctx)
		if err != nil {
			t.Fatalf("unexpected error listing presets: %v", err)
		}

		if len(presets) != len(expected) {
			t.Errorf("expected %d presets, got %d", len(expected), len(presets))
		}

		ids := make([]string, 0, len(presets))
		for _, p := range presets {
			ids = append(ids, p.ID)
			if _, ok := expected[p.ID]; !ok {
				t.Errorf("unexpected preset %s in list", p.ID)
			}
		}
		if !sort.StringsAreSorted(ids) {
			t.Errorf("presets are not sorted by id: %v", ids)
		}
	})
}
