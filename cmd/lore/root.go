// Root command for the lore CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lore/internal/paths"
	"github.com/mesh-intelligence/lore/pkg/lore"
)

// Exit codes: 1 for user errors (bad arguments, missing entities),
// 2 for system errors (storage, configuration).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagAuthor    int64
)

// Values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir  string
	configLogLevel string
	configUsers    map[int64]string
)

var rootCmd = &cobra.Command{
	Use:     "lore",
	Short:   "Lore is a local-first question-and-answer store",
	Version: lore.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configLogLevel = cfg.GetString(cfgKeyLogLevel)
		configUsers, err = parseUsers(cfg.GetStringMapString(cfgKeyUsers))
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.lore)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.lore-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().Int64Var(&flagAuthor, "author", 0, "acting user ID")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(replyCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(unlinkCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(preferCmd)
	rootCmd.AddCommand(unpreferCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(voteCmd)
	rootCmd.AddCommand(trustCmd)
	rootCmd.AddCommand(untrustCmd)
	rootCmd.AddCommand(trustedCmd)
	rootCmd.AddCommand(ratingCmd)
}

// resolveDataDir returns the data directory path following the precedence
// chain: --data-dir flag > config.yaml data_dir > LORE_DATA_DIR env >
// default $(CWD)/.lore-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > LORE_CONFIG_DIR env > DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
