package config

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParsePreset decodes preset YAML strictly: unknown fields and extra
// documents are errors.
func ParsePreset(data []byte) (Preset, error) {
	var preset Preset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&preset); err != nil {
		return Preset{}, fmt.Errorf("parse preset: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Preset{}, fmt.Errorf("parse preset: multiple YAML documents are not supported")
		}
		return Preset{}, fmt.Errorf("parse preset: %w", err)
	}
	return preset, nil
}
