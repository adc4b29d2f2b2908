package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazegen/internal/config"
	"github.com/vovakirdan/mazegen/internal/maze"
	"github.com/vovakirdan/mazegen/internal/storage"
)

var (
	flagShowFormat string
	flagShowStats  bool
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored maze",
	Long: `Print a maze from history. The ID may be shortened to any unique prefix.

Examples:
  mazegen show 3f2a9c1e
  mazegen show 3f2a --format json`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().StringVarP(&flagShowFormat, "format", "f", "", "Output format: text, json, yaml, hex")
	showCmd.Flags().BoolVar(&flagShowStats, "stats", false, "Print maze statistics")
}

func runShow(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = flagShowFormat
	}

	rec, g := loadStoredMaze(cfg, args[0])

	if cfg.Output.Format == config.FormatText {
		warnIfTooWide(logger, g)
	}
	out := mazeOutput{
		ID:    rec.MazeID,
		Seed:  rec.Seed,
		Start: maze.C(rec.StartX, rec.StartZ),
		Grid:  g,
	}
	if err := writeMaze(os.Stdout, out, cfg.Output.Format, flagShowStats || cfg.Output.Stats); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing maze: %v\n", err)
		os.Exit(1)
	}
}

// loadStoredMaze finds a maze by ID prefix and decodes it, exiting on failure.
func loadStoredMaze(cfg config.Config, prefix string) (*storage.MazeRecord, *maze.Grid) {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening maze database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rec, err := store.FindMaze(prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "Error: no maze matches %q\n", prefix)
		fmt.Fprintln(os.Stderr, "Run 'mazegen history' to see stored mazes.")
		os.Exit(1)
	}

	g, err := rec.Grid()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return rec, g
}
