package life

import "strconv"

// Config holds the board dimensions for the Life simulation.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the standard 64x64 board.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64}
}

// FromMap populates a Config from a string map. Non-numeric values are
// ignored; non-positive values are kept so construction can reject them.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	return c
}
