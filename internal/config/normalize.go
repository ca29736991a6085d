package config

import "strings"

// Normalize trims and lowercases the enumerated fields so the preset
// compares against canonical tokens.
func Normalize(preset *Preset) {
	preset.Topic = strings.ToLower(strings.TrimSpace(preset.Topic))
	preset.Direction = strings.ToLower(strings.TrimSpace(preset.Direction))
	preset.Names = strings.ToLower(strings.TrimSpace(preset.Names))
	preset.Filters.Size = strings.ToLower(strings.TrimSpace(preset.Filters.Size))
	if preset.Filters.Location != nil {
		preset.Filters.Location.Field = strings.ToLower(strings.TrimSpace(preset.Filters.Location.Field))
		for i, place := range preset.Filters.Location.Places {
			preset.Filters.Location.Places[i] = strings.TrimSpace(place)
		}
	}
}
