// mazegen generates perfect mazes with randomized recursive backtracking.
//
// Usage:
//
//	mazegen generate          - Generate a maze and print it
//	mazegen history           - List recently generated mazes
//	mazegen show <id>         - Print a stored maze
//	mazegen validate <id>     - Check that a stored maze is perfect
//	mazegen presets           - List size presets
//
// Global flags:
//
//	--config <path>  - Use a specific config file
//	--db <path>      - Set database path (default from config: ~/.mazegen/mazes.db)
//	--verbose        - Log every visited cell
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazegen/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazegen",
	Short: "Generate perfect mazes",
	Long: `mazegen carves perfect mazes (exactly one path between any two cells)
using randomized recursive backtracking, and keeps a history of what it made.

Available commands:
  generate  - Generate a maze
  history   - Show recently generated mazes
  show      - Print a stored maze
  validate  - Check a stored maze
  presets   - Show size presets

Examples:
  mazegen generate
  mazegen generate --width 30 --depth 20 --seed 42
  mazegen generate --preset large --format json
  mazegen history
  mazegen show 3f2a`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to maze history database (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(presetsCmd)
}

// newLogger creates the CLI logger on stderr.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazegen",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the config file and applies the global --db override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}
