package loam

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/starrating/internal/testutils"
	"github.com/aretw0/starrating/pkg/domain"
	"github.com/aretw0/starrating/pkg/ports/tests"
)

func TestLoader_Contract(t *testing.T) {
	// 1. Setup Data
	dir := testutils.SeedDir(t, map[string]string{
		"big-red.md": `---
title: Big Red
props:
  stars_length: 10
  dimension: 4
  color: "#FF0000"
---
Ten big red stars.`,
		"halves.md": `---
props:
  isHalfRatingEnabled: true
  initialRating: 2.5
---
Half stars.`,
	})

	bigRed := domain.DefaultConfig()
	bigRed.StarsLength = 10
	bigRed.Dimension = 4
	bigRed.Color = "#FF0000"

	halves := domain.DefaultConfig()
	halves.HalfRating = true
	halves.InitialRating = 2.5

	// 2. Create Adapter
	loader, err := Open(dir)
	require.NoError(t, err)

	// 3. Run Contract
	tests.PresetLoaderContractTest(t, loader, map[string]domain.Config{
		"big-red": bigRed,
		"halves":  halves,
	})
}

func TestLoader_TitleAndDescription(t *testing.T) {
	dir := testutils.SeedDir(t, map[string]string{
		"plain.md": `---
props: {}
---
# Plain

Just defaults.`,
	})

	loader, err := Open(dir)
	require.NoError(t, err)

	p, err := loader.GetPreset(context.Background(), "plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", p.Title, "title defaults to the ID")
	assert.Equal(t, "# Plain\n\nJust defaults.", p.Description)
	assert.Equal(t, domain.DefaultConfig(), p.Config)
}

func TestLoader_InvalidPreset(t *testing.T) {
	dir := testutils.SeedDir(t, map[string]string{
		"broken.md": `---
props:
  stars_length: 0
---
No stars.`,
	})

	loader, err := Open(dir)
	require.NoError(t, err)

	_, err = loader.ListPresets(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.ErrorContains(t, err, "preset broken")
}

func TestLoader_DetectsCollisions(t *testing.T) {
	dir := testutils.SeedDir(t, map[string]string{
		"foo.md": `---
id: foo
---
Explicit ID`,
		"bar.md": `---
id: foo
---
Same ID`,
	})

	loader, err := Open(dir)
	require.NoError(t, err)

	_, err = loader.ListPresets(context.Background())
	assert.ErrorContains(t, err, "collision detected")
}
