package main

import (
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/starrating/internal/cli"
	"github.com/aretw0/starrating/internal/presentation/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with a widget in the terminal",
	Long: `Opens a widget in the terminal.
Use the arrow keys to move the pointer in half-star steps, Space or Enter to click,
Esc to move the pointer away and q to quit.

When stdin is not a terminal, line commands are read instead:
  move <star> [fraction]
  click <star> [fraction]
  leave | show | quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := buildWidget(cmd)
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		profile := termenv.NewOutput(os.Stdout).Profile
		if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet && term.IsTerminal(int(os.Stdin.Fd())) {
			tui.PrintBanner(os.Stdout, profile)
		}
		return cli.Play(ctx, w, os.Stdin, os.Stdout, profile)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolP("quiet", "q", false, "Skip the banner")
}
