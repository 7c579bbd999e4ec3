package ca

import (
	"fmt"
	"strconv"
)

// Config holds the parameters of a simulation run.
type Config struct {
	Rule  int
	Cells int
	Steps int
	Mode  SeedMode
	Seed  int64 // generator seed used by SeedRandom
}

// DefaultConfig mirrors the reference runs.
func DefaultConfig() Config {
	return Config{Rule: 30, Cells: 256, Steps: 128, Mode: SeedCenter, Seed: DefaultSeed}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= MaxRule {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["cells"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 3 {
			c.Cells = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		if m := SeedMode(v); m == SeedCenter || m == SeedRandom {
			c.Mode = m
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Validate reports the first contract violation in the configuration.
func (c Config) Validate() error {
	if c.Rule < 0 || c.Rule > MaxRule {
		return fmt.Errorf("%w: rule %d outside [0,%d]", ErrInvalidParameter, c.Rule, MaxRule)
	}
	if c.Cells < 3 {
		return fmt.Errorf("%w: cells %d below minimum 3", ErrInvalidParameter, c.Cells)
	}
	if c.Steps < 1 {
		return fmt.Errorf("%w: steps %d below minimum 1", ErrInvalidParameter, c.Steps)
	}
	if c.Mode != SeedCenter && c.Mode != SeedRandom {
		return fmt.Errorf("%w: unknown seed mode %q", ErrInvalidParameter, c.Mode)
	}
	return nil
}

// Trajectory is the complete space-time history of one run: Steps rows of
// Cells binary values in row-major order. It is fully populated by Simulate
// and immutable afterwards; consumers treat returned slices as read-only.
type Trajectory struct {
	Cells int
	Steps int
	data  []uint8
}

func newTrajectory(cells, steps int) *Trajectory {
	return &Trajectory{Cells: cells, Steps: steps, data: make([]uint8, cells*steps)}
}

// Row returns generation step. The slice aliases the trajectory backing.
func (t *Trajectory) Row(step int) []uint8 {
	return t.data[step*t.Cells : (step+1)*t.Cells]
}

// Last returns the final generation.
func (t *Trajectory) Last() []uint8 {
	return t.Row(t.Steps - 1)
}

// Column returns the history of the cell at position x, oldest first.
func (t *Trajectory) Column(x int) []uint8 {
	col := make([]uint8, t.Steps)
	for step := 0; step < t.Steps; step++ {
		col[step] = t.data[step*t.Cells+x]
	}
	return col
}

// Grid exposes the row-major backing slice, sized Steps×Cells, for renderers.
func (t *Trajectory) Grid() []uint8 {
	return t.data
}

func (t *Trajectory) run(rule uint8) {
	for step := 1; step < t.Steps; step++ {
		StepRow(t.Row(step), t.Row(step-1), rule)
	}
}

// Simulate runs the automaton for cfg.Steps generations starting from the
// configured seed mode and returns the full space-time table. The table is
// never returned partially populated.
func Simulate(cfg Config) (*Trajectory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := newTrajectory(cfg.Cells, cfg.Steps)
	SeedRow(t.Row(0), cfg.Mode, cfg.Seed)
	t.run(uint8(cfg.Rule))
	return t, nil
}

// SimulateFrom runs the same generation loop but takes generation zero from
// the caller. cfg.Mode and cfg.Seed are ignored; cfg.Cells must match the
// injected row, and the row must contain only 0/1 values.
func SimulateFrom(cfg Config, initial []uint8) (*Trajectory, error) {
	cfg.Mode = SeedCenter
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(initial) != cfg.Cells {
		return nil, fmt.Errorf("%w: initial row has %d cells, config expects %d",
			ErrInvalidParameter, len(initial), cfg.Cells)
	}
	for i, v := range initial {
		if v > 1 {
			return nil, fmt.Errorf("%w: initial row value %d at position %d is not binary",
				ErrInvalidParameter, v, i)
		}
	}
	t := newTrajectory(cfg.Cells, cfg.Steps)
	copy(t.Row(0), initial)
	t.run(uint8(cfg.Rule))
	return t, nil
}
