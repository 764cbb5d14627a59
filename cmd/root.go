package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fightpulse/combat-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "combat-api",
	Short: "FightPulse combat sports API server",
	Long: `FightPulse API - combat sports content and cross-entity search

The API serves fighters, events, news and clubs, with a relevance-
scored search that spans all four at once.

Features:
  • Cross-entity search with scoring and highlighted fragments
  • Autocomplete suggestions grouped by entity kind
  • Entity catalog with pagination
  • Server-side response caching and per-client rate limiting`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it. Version
// and help never touch config, so a broken settings file must not
// block them.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
