package config

import "fmt"

// SizePreset represents a named maze size.
type SizePreset string

const (
	PresetTiny   SizePreset = "tiny"
	PresetSmall  SizePreset = "small"
	PresetMedium SizePreset = "medium"
	PresetLarge  SizePreset = "large"
)

// Presets lists the presets in ascending size.
var Presets = []SizePreset{PresetTiny, PresetSmall, PresetMedium, PresetLarge}

// DimensionsForPreset returns the width and depth for a preset.
func DimensionsForPreset(preset SizePreset) (width, depth int, ok bool) {
	switch preset {
	case PresetTiny:
		return 4, 4, true
	case PresetSmall:
		return 10, 8, true
	case PresetMedium:
		return 16, 12, true
	case PresetLarge:
		return 40, 24, true
	default:
		return 0, 0, false
	}
}

// ApplyPreset sets the maze dimensions from a preset and moves the start
// back to the origin.
func ApplyPreset(cfg *Config, preset SizePreset) error {
	w, d, ok := DimensionsForPreset(preset)
	if !ok {
		return fmt.Errorf("config: unknown size preset %q", preset)
	}
	cfg.Maze.Width = w
	cfg.Maze.Depth = d
	cfg.Maze.Start = StartConfig{}
	return nil
}
