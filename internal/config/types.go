// Package config loads quiz presets: the full parameter set a session
// needs, so a quiz can start without the interactive prompts.
package config

// Preset selects a dataset slice and how it is quizzed.
type Preset struct {
	Version   int     `yaml:"version"`
	Topic     string  `yaml:"topic"`
	Direction string  `yaml:"direction"`
	Names     string  `yaml:"names"`
	Options   *int    `yaml:"options"`
	Seed      int64   `yaml:"seed"`
	Filters   Filters `yaml:"filters"`
}

// Filters mirrors the limiting conditions. Absent fields impose no
// restriction; pointer fields distinguish "unset" from a chosen polarity.
type Filters struct {
	Independent *bool     `yaml:"independent"`
	Location    *Location `yaml:"location"`
	Size        string    `yaml:"size"`
	Island      *bool     `yaml:"island"`
}

// Location restricts records to chosen region or subregion values.
type Location struct {
	Field  string   `yaml:"field"`
	Places []string `yaml:"places"`
}
