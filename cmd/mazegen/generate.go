package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazegen/internal/config"
	"github.com/vovakirdan/mazegen/internal/maze"
	"github.com/vovakirdan/mazegen/internal/storage"
)

var (
	flagWidth  int
	flagDepth  int
	flagSeed   uint64
	flagStartX int
	flagStartZ int
	flagPreset string
	flagFormat string
	flagStats  bool
	flagNoSave bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a maze",
	Long: `Generate a perfect maze and print it.

The maze is carved from the start cell (default 0,0) by randomized
recursive backtracking. The same seed and size always produce the same maze.

Output formats:
  text  - ASCII walls, north is up
  json  - Per-cell wall flags
  yaml  - Per-cell wall flags
  hex   - Compact WxD:hex encoding, one byte per cell

Examples:
  mazegen generate
  mazegen generate --width 30 --depth 20
  mazegen generate --preset large --seed 42
  mazegen generate --format json --stats
  mazegen generate --start-x 5 --start-z 5 --no-save`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVarP(&flagWidth, "width", "W", 0, "Maze width (x extent)")
	generateCmd.Flags().IntVarP(&flagDepth, "depth", "D", 0, "Maze depth (z extent)")
	generateCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	generateCmd.Flags().IntVar(&flagStartX, "start-x", 0, "Start cell x")
	generateCmd.Flags().IntVar(&flagStartZ, "start-z", 0, "Start cell z")
	generateCmd.Flags().StringVar(&flagPreset, "preset", "", "Size preset: tiny, small, medium, large")
	generateCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format: text, json, yaml, hex")
	generateCmd.Flags().BoolVar(&flagStats, "stats", false, "Print maze statistics")
	generateCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the maze in history")
}

func runGenerate(cmd *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override config; a preset is applied first so explicit
	// dimensions still win.
	if flagPreset != "" {
		if err := config.ApplyPreset(&cfg, config.SizePreset(flagPreset)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Maze.Width = flagWidth
	}
	if flags.Changed("depth") {
		cfg.Maze.Depth = flagDepth
	}
	if flags.Changed("seed") {
		cfg.Maze.Seed = flagSeed
	}
	if flags.Changed("start-x") {
		cfg.Maze.Start.X = flagStartX
	}
	if flags.Changed("start-z") {
		cfg.Maze.Start.Z = flagStartZ
	}
	if flags.Changed("format") {
		cfg.Output.Format = flagFormat
	}
	if flagStats {
		cfg.Output.Stats = true
	}
	if flagNoSave {
		cfg.Storage.Save = false
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// A zero seed means "random"; pick one so the run can be reproduced.
	seed := cfg.Maze.Seed
	for seed == 0 {
		seed = rand.Uint64()
	}
	start := maze.C(cfg.Maze.Start.X, cfg.Maze.Start.Z)

	logger.Debug("generating", "width", cfg.Maze.Width, "depth", cfg.Maze.Depth, "seed", seed, "start", start)
	g, err := maze.Generate(cfg.Maze.Width, cfg.Maze.Depth,
		maze.WithSeed(seed),
		maze.WithStart(start),
		maze.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating maze: %v\n", err)
		os.Exit(1)
	}
	if err := maze.Validate(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: generated maze failed validation: %v\n", err)
		os.Exit(1)
	}

	out := mazeOutput{Seed: seed, Start: start, Grid: g}
	if cfg.Storage.Save {
		out.ID = saveMaze(logger, cfg.Storage.Path, g, seed, start)
	}

	if cfg.Output.Format == config.FormatText {
		warnIfTooWide(logger, g)
	}
	if err := writeMaze(os.Stdout, out, cfg.Output.Format, cfg.Output.Stats); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing maze: %v\n", err)
		os.Exit(1)
	}
	if out.ID != "" && cfg.Output.Format == config.FormatText {
		fmt.Printf("id: %s\n", out.ID)
	}
}

// saveMaze records the maze in history and returns its ID.
// Storage problems are logged and do not fail generation.
func saveMaze(logger *log.Logger, dbPath string, g *maze.Grid, seed uint64, start maze.Coord) string {
	store, err := storage.Open(dbPath)
	if err != nil {
		logger.Warn("could not open maze database", "error", err)
		return ""
	}
	defer store.Close()

	rec, err := store.SaveMaze(storage.NewRecord(g, seed, start))
	if err != nil {
		logger.Warn("could not save maze", "error", err)
		return ""
	}
	logger.Debug("maze saved", "id", rec.MazeID, "db", dbPath)
	return rec.MazeID
}

// warnIfTooWide logs a warning when the text form will wrap in the terminal.
func warnIfTooWide(logger *log.Logger, g *maze.Grid) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return
	}
	if g.TextWidth() > width {
		logger.Warn("maze is wider than the terminal", "columns", g.TextWidth(), "terminal", width)
	}
}
