package config

import (
	"fmt"
	"os"
)

// Load reads, parses, normalizes, and validates a preset file.
func Load(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("read preset: %w", err)
	}
	preset, err := ParsePreset(data)
	if err != nil {
		return Preset{}, err
	}
	Normalize(&preset)
	if err := Validate(&preset); err != nil {
		return Preset{}, err
	}
	return preset, nil
}
