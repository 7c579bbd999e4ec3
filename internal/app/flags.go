package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Preset string
	Rule   int
	Cells  int
	Rows   int
	Scale  int
	TPS    int
	Seed   int64
	Mode   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rule: 30, Cells: 256, Rows: 256, Scale: 3, TPS: 30, Seed: 42, Mode: "center"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "named canonical rule (overrides -rule)")
	fs.IntVar(&c.Rule, "rule", c.Rule, "Wolfram rule code (0-255)")
	fs.IntVar(&c.Cells, "cells", c.Cells, "lattice width in cells")
	fs.IntVar(&c.Rows, "rows", c.Rows, "visible generations")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initial row")
	fs.StringVar(&c.Mode, "mode", c.Mode, "initial row: center or random")
}
