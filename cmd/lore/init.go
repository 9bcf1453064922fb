// Init command for the lore CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize lore storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Resolve config directory (flag > env > default) and ensure it
		// exists with a default config.yaml.
		configDir, err := resolveConfigDir()
		if err != nil {
			fatalSys("init", err)
		}
		if err := ensureConfigDir(configDir); err != nil {
			fatalSys("init", err)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			fatalSys("init", err)
		}

		// Attach backend (creates the data directory and schema).
		backend, err := attachBackend()
		if err != nil {
			fatalSys("init", err)
		}
		defer backend.Detach()

		dataDir, err := resolveDataDir()
		if err != nil {
			fatalSys("init", err)
		}

		fmt.Println("Lore initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		return nil
	},
}
