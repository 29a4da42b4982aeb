package main

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/starrating"
	"github.com/aretw0/starrating/internal/presentation/raster"
	"github.com/aretw0/starrating/internal/presentation/svg"
	"github.com/aretw0/starrating/internal/presentation/tui"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a widget to SVG, PNG or text",
	Long: `Renders the widget with its initial rating.
Use --at to render the hover preview of a pointer sample (1-based star and fraction).`,
	Example: `  starrating render --preset half-star-rating -o rating.svg
  starrating render --stars 10 --initial 7 --format png -o rating.png
  starrating render --half --at 3,0.3 --format text`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := buildWidget(cmd)
		if err != nil {
			return err
		}

		if at, _ := cmd.Flags().GetStringSlice("at"); len(at) > 0 {
			sample, err := starrating.ParseSample(at)
			if err != nil {
				return err
			}
			w.OnPointerMove(sample)
		}

		var out io.Writer = os.Stdout
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		format, _ := cmd.Flags().GetString("format")
		frame := w.Frame()
		switch format {
		case "svg":
			return svg.Render(out, frame)
		case "png":
			scale, _ := cmd.Flags().GetFloat64("scale")
			background, _ := cmd.Flags().GetString("background")
			opts := []raster.Option{raster.WithScale(scale)}
			if background != "" {
				opts = append(opts, raster.WithBackground(background))
			}
			return raster.Render(out, frame, opts...)
		case "text":
			profile := termenv.Ascii
			if out == os.Stdout {
				profile = termenv.NewOutput(os.Stdout).Profile
			}
			_, err := fmt.Fprintln(out, tui.Line(frame, profile))
			return err
		default:
			return fmt.Errorf("unknown format %q (supported: svg, png, text)", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("format", "f", "svg", "Output format: svg, png or text")
	renderCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	renderCmd.Flags().StringSlice("at", nil, "Hover the pointer at <star>[,fraction] before rendering")
	renderCmd.Flags().Float64("scale", 16, "PNG pixels per rem")
	renderCmd.Flags().String("background", "", "PNG background color (transparent by default)")
}
