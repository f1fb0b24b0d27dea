package shell

import (
	"errors"
	"fmt"
)

// Color modes accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultPrompt is used when Config.Prompt is empty.
const DefaultPrompt = "pathwalk> "

var errInvalidColorMode = errors.New("invalid color mode")

// Config is the "shell" section of the pathwalk settings file.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Color       string `yaml:"color"`
}

// SetDefaults fills the prompt and color mode.
func (c *Config) SetDefaults() bool {
	changed := false

	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
		changed = true
	}

	if c.Color == "" {
		c.Color = ColorAuto
		changed = true
	}

	return changed
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("%w: %q", errInvalidColorMode, c.Color)
	}
}
