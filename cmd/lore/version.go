// Version command for the lore CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lore/pkg/lore"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lore version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lore", lore.Version)
	},
}
