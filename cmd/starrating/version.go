package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/starrating"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of starrating",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("starrating version %s\n", strings.TrimSpace(starrating.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
