package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/starrating/internal/cli"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the preset catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		plain, _ := cmd.Flags().GetBool("plain")
		return cli.PrintPresets(cmd.Context(), presets, os.Stdout, plain)
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.Flags().Bool("plain", false, "Print raw markdown instead of styled output")
}
