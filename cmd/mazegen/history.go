package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazegen/internal/storage"
)

var (
	flagHistoryLimit int
	flagDelete       string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently generated mazes",
	Long: `Display the most recently generated mazes, newest first.

Examples:
  mazegen history
  mazegen history --limit 50
  mazegen history --delete 3f2a9c1e-...`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of mazes to list")
	historyCmd.Flags().StringVar(&flagDelete, "delete", "", "Delete the maze with this ID (or unique prefix)")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open maze storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening maze database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagDelete != "" {
		deleteMaze(store, flagDelete)
		return
	}

	records, err := store.RecentMazes(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Maze History")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No mazes recorded yet.")
		fmt.Println()
		fmt.Println("Run 'mazegen generate' to make the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-9s  %-20s  %-9s  %s\n", "ID", "Size", "Seed", "Dead ends", "Date")
	fmt.Printf("  %-8s  %-9s  %-20s  %-9s  %s\n", "--", "----", "----", "---------", "----")

	// Print mazes
	for _, rec := range records {
		size := fmt.Sprintf("%dx%d", rec.Width, rec.Depth)
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %-9s  %-20d  %-9d  %s\n", shortID(rec.MazeID), size, rec.Seed, rec.DeadEnds, dateStr)
	}

	// Show totals
	stats, err := store.GetHistoryStats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Total: %d mazes, %d cells (largest %d)\n", stats.MazeCount, stats.TotalCells, stats.LargestCells)
	}
}

func deleteMaze(store *storage.Store, prefix string) {
	rec, err := store.FindMaze(prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "Error: no maze matches %q\n", prefix)
		os.Exit(1)
	}

	if _, err := store.DeleteMaze(rec.MazeID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted maze %s\n", rec.MazeID)
}

// shortID returns the first 8 characters of a maze ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
