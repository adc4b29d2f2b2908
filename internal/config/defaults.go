package config

import (
	_ "embed"
)

//go:embed defaults/mazegen.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Maze: MazeConfig{
			Width: 16,
			Depth: 12,
			Seed:  0,
			Start: StartConfig{X: 0, Z: 0},
		},
		Limits: LimitsConfig{
			MaxWidth: 256,
			MaxDepth: 256,
		},
		Output: OutputConfig{
			Format: FormatText,
			Stats:  false,
		},
		Storage: StorageConfig{
			Path: "~/.mazegen/mazes.db",
			Save: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultYAML
}
