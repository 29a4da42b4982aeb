package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/starrating"
	"github.com/aretw0/starrating/internal/cli"
	"github.com/aretw0/starrating/pkg/observability"
	"github.com/aretw0/starrating/pkg/ports"
)

var rootCmd = &cobra.Command{
	Use:   "starrating",
	Short: "Starrating is a star rating widget engine",
	Long: `Starrating turns pointer samples and clicks into ratings on a row of stars.
Play with a widget in the terminal, render it to SVG or PNG, or serve it over HTTP and MCP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// overrideFlags maps option flags to config keys.
var overrideFlags = map[string]string{
	"stars":     "stars_length",
	"half":      "half_rating",
	"hover":     "hover",
	"read-only": "read_only",
	"initial":   "initial_rating",
	"dimension": "dimension",
	"color":     "color",
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Widget config file (YAML or JSON)")
	flags.String("preset", "", "Start from a named preset")
	flags.String("presets-dir", "", "Directory of preset documents (defaults to the built-in catalog)")
	flags.String("env-file", "", "Env file to load before reading STARRATING_* variables (defaults to ./.env)")
	flags.Bool("debug", false, "Enable debug logging to stderr")

	flags.Int("stars", 5, "Number of stars")
	flags.Bool("half", false, "Allow half-star ratings")
	flags.Bool("hover", true, "Preview the rating under the pointer")
	flags.Bool("read-only", false, "Ignore pointer input")
	flags.Float64("initial", 0, "Initial rating")
	flags.Float64("dimension", 2, "Star size in rem")
	flags.String("color", "#FFD700", "Fill color of the stars (hex)")
}

// loadCatalog opens the preset catalog selected by --presets-dir.
func loadCatalog(cmd *cobra.Command) (ports.PresetLoader, error) {
	dir, _ := cmd.Flags().GetString("presets-dir")
	return cli.Catalog(dir)
}

// settingsFromFlags collects the config layers named on the command line.
func settingsFromFlags(cmd *cobra.Command) cli.Settings {
	s := cli.Settings{Overrides: map[string]any{}}
	s.ConfigPath, _ = cmd.Flags().GetString("config")
	s.Preset, _ = cmd.Flags().GetString("preset")
	s.PresetsDir, _ = cmd.Flags().GetString("presets-dir")
	if envFile, _ := cmd.Flags().GetString("env-file"); envFile != "" {
		s.EnvFiles = []string{envFile}
	}
	for name, key := range overrideFlags {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			s.Overrides[key] = f.Value.String()
		}
	}
	return s
}

// newLogger builds the logger selected by --debug.
func newLogger(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.NewLogger(debug)
}

// buildWidget resolves the layered config and creates a widget that logs its
// transitions.
func buildWidget(cmd *cobra.Command) (*starrating.Widget, error) {
	presets, err := loadCatalog(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := cli.ResolveConfig(cmd.Context(), settingsFromFlags(cmd), presets)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config: %w", err)
	}

	logger := newLogger(cmd)
	return starrating.New(
		starrating.WithConfig(cfg),
		starrating.WithLogger(logger),
		starrating.WithLifecycleHooks(observability.LoggingHooks(logger)),
	)
}
