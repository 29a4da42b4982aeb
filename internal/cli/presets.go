package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/starrating"
	"github.com/aretw0/starrating/internal/presentation/tui"
	"github.com/aretw0/starrating/pkg/ports"
)

// PresetsMarkdown lists the catalog as a markdown document with a preview row
// per preset.
func PresetsMarkdown(ctx context.Context, presets ports.PresetLoader) (string, error) {
	list, err := presets.ListPresets(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# Presets\n")
	for _, p := range list {
		w, err := starrating.New(starrating.WithConfig(p.Config), starrating.WithID(p.ID))
		if err != nil {
			return "", fmt.Errorf("preset %q: %w", p.ID, err)
		}
		fmt.Fprintf(&b, "\n## %s (`%s`)\n\n", p.Title, p.ID)
		fmt.Fprintf(&b, "    %s\n\n", tui.Line(w.Frame(), termenv.Ascii))
		if p.Description != "" {
			b.WriteString(p.Description)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// PrintPresets renders the catalog to out. Plain output skips glamour.
func PrintPresets(ctx context.Context, presets ports.PresetLoader, out io.Writer, plain bool) error {
	doc, err := PresetsMarkdown(ctx, presets)
	if err != nil {
		return err
	}
	if plain {
		_, err = io.WriteString(out, doc)
		return err
	}

	render, err := tui.NewRenderer("", 80)
	if err != nil {
		return err
	}
	rendered, err := render(doc)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, rendered)
	return err
}
