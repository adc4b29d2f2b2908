package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/mazegen/internal/config"
	"github.com/vovakirdan/mazegen/internal/maze"
)

// mazeDocument is the structured form written for json and yaml output.
type mazeDocument struct {
	ID    string        `json:"id,omitempty" yaml:"id,omitempty"`
	Seed  uint64        `json:"seed" yaml:"seed"`
	Start [2]int        `json:"start" yaml:"start,flow"`
	Stats *maze.Stats   `json:"stats,omitempty" yaml:"stats,omitempty"`
	Maze  maze.Snapshot `json:"maze" yaml:"maze"`
}

// mazeOutput bundles a grid with the metadata needed to print it.
type mazeOutput struct {
	ID    string
	Seed  uint64
	Start maze.Coord
	Grid  *maze.Grid
}

// writeMaze prints a maze in the given format.
func writeMaze(w io.Writer, out mazeOutput, format string, withStats bool) error {
	stats := maze.Summarize(out.Grid)

	switch format {
	case config.FormatText:
		if _, err := io.WriteString(w, out.Grid.String()); err != nil {
			return err
		}
		if withStats {
			return writeStatsLine(w, out, stats)
		}
		return nil

	case config.FormatHex:
		_, err := fmt.Fprintf(w, "%dx%d:%s\n", out.Grid.Width(), out.Grid.Depth(), out.Grid.Encode())
		return err

	case config.FormatJSON, config.FormatYAML:
		doc := mazeDocument{
			ID:    out.ID,
			Seed:  out.Seed,
			Start: [2]int{out.Start.X, out.Start.Z},
			Maze:  out.Grid.Snapshot(),
		}
		if withStats {
			doc.Stats = &stats
		}
		if format == config.FormatJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("unknown output format %q", format)
}

func writeStatsLine(w io.Writer, out mazeOutput, s maze.Stats) error {
	_, err := fmt.Fprintf(w, "\n%dx%d  seed %d  passages %d  dead ends %d  longest corridor %d\n",
		out.Grid.Width(), out.Grid.Depth(), out.Seed, s.Passages, s.DeadEnds, s.LongestCorridor)
	return err
}
