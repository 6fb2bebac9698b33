package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string
	Scale  int
	Vector bool
	VSync  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 2, VSync: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.BoolVar(&c.Vector, "vector", c.Vector, "draw with ebiten vector paths instead of CPU pixels")
	fs.BoolVar(&c.VSync, "vsync", c.VSync, "pace frames to the display refresh")
}
