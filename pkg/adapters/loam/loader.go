package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"

	"github.com/aretw0/starrating/pkg/config"
	"github.com/aretw0/starrating/pkg/domain"
)

// Loader adapts the Loam library to the ports.PresetLoader interface.
type Loader struct {
	Repo *loam.TypedRepository[PresetMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[PresetMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only, strict Loam repository at dir and wraps it.
func Open(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode yields json.Number for every numeric frontmatter value;
	// config.Decode handles it through weak typing.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[PresetMetadata](repo)), nil
}

// GetPreset retrieves a preset by its normalized ID (file name without extension,
// unless the frontmatter sets one).
func (l *Loader) GetPreset(ctx context.Context, id string) (domain.Preset, error) {
	presets, err := l.ListPresets(ctx)
	if err != nil {
		return domain.Preset{}, err
	}
	i := sort.Search(len(presets), func(i int) bool { return presets[i].ID >= id })
	if i < len(presets) && presets[i].ID == id {
		return presets[i], nil
	}
	return domain.Preset{}, fmt.Errorf("%w: %s", domain.ErrPresetNotFound, id)
}

// ListPresets lists all presets in the repository, sorted by ID.
func (l *Loader) ListPresets(ctx context.Context) ([]domain.Preset, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	presets := make([]domain.Preset, 0, len(docs))

	for _, doc := range docs {
		// Use the ID from metadata if available, otherwise filename ID
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		// Collision Detection
		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID

		cfg, err := config.Decode(doc.Data.Props, domain.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", id, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("preset %s: %w", id, err)
		}

		title := doc.Data.Title
		if title == "" {
			title = id
		}
		presets = append(presets, domain.Preset{
			ID:          id,
			Title:       title,
			Description: strings.TrimSpace(doc.Content),
			Config:      cfg,
		})
	}

	sort.Slice(presets, func(i, j int) bool { return presets[i].ID < presets[j].ID })
	return presets, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
