// Package config provides YAML-based configuration loading and size presets
// for the maze generator.
package config

import (
	"fmt"
	"slices"
)

// Config contains all configuration for mazegen.
type Config struct {
	Maze    MazeConfig    `yaml:"maze"`
	Limits  LimitsConfig  `yaml:"limits"`
	Output  OutputConfig  `yaml:"output"`
	Storage StorageConfig `yaml:"storage"`
}

// MazeConfig defines the maze that is generated when no flags override it.
type MazeConfig struct {
	Width int         `yaml:"width"`
	Depth int         `yaml:"depth"`
	Seed  uint64      `yaml:"seed"` // 0 = pick a fresh seed per run
	Start StartConfig `yaml:"start"`
}

// StartConfig is the first cell visited by the generator.
type StartConfig struct {
	X int `yaml:"x"`
	Z int `yaml:"z"`
}

// LimitsConfig caps the accepted maze dimensions.
type LimitsConfig struct {
	MaxWidth int `yaml:"max_width"`
	MaxDepth int `yaml:"max_depth"`
}

// OutputConfig controls how generated mazes are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // "text", "json", "yaml" or "hex"
	Stats  bool   `yaml:"stats"`  // Print a summary after the maze
}

// StorageConfig controls maze history persistence.
type StorageConfig struct {
	Path string `yaml:"path"`
	Save bool   `yaml:"save"` // Record every generated maze
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatHex  = "hex"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatHex}

// Validate checks dimensions against limits and the output format.
func (c Config) Validate() error {
	if c.Limits.MaxWidth <= 0 || c.Limits.MaxDepth <= 0 {
		return fmt.Errorf("config: limits must be positive, got %dx%d", c.Limits.MaxWidth, c.Limits.MaxDepth)
	}
	if c.Maze.Width <= 0 || c.Maze.Width > c.Limits.MaxWidth {
		return fmt.Errorf("config: width %d outside 1..%d", c.Maze.Width, c.Limits.MaxWidth)
	}
	if c.Maze.Depth <= 0 || c.Maze.Depth > c.Limits.MaxDepth {
		return fmt.Errorf("config: depth %d outside 1..%d", c.Maze.Depth, c.Limits.MaxDepth)
	}
	if c.Maze.Start.X < 0 || c.Maze.Start.X >= c.Maze.Width ||
		c.Maze.Start.Z < 0 || c.Maze.Start.Z >= c.Maze.Depth {
		return fmt.Errorf("config: start (%d,%d) outside %dx%d maze",
			c.Maze.Start.X, c.Maze.Start.Z, c.Maze.Width, c.Maze.Depth)
	}
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("config: unknown output format %q", c.Output.Format)
	}
	return nil
}
