// Package ca implements Wolfram's elementary cellular automata: the 256
// three-neighbor binary rules applied over a periodic one-dimensional lattice.
package ca

import (
	"errors"
	"fmt"
)

// MaxRule is the largest elementary rule code.
const MaxRule = 255

// ErrInvalidParameter reports a caller contract violation detected before any
// simulation work starts.
var ErrInvalidParameter = errors.New("invalid parameter")

// Neighborhood returns the 3-bit code left·4 + center·2 + right of the
// periodic neighborhood centered on position i. Positions 0 and len(row)-1
// take their missing neighbor from the opposite end of the lattice.
func Neighborhood(row []uint8, i int) uint8 {
	n := len(row)
	left := row[(i-1+n)%n]
	right := row[(i+1)%n]
	return left<<2 | row[i]<<1 | right
}

// StepRow writes one generation of the rule into dst. Callers guarantee that
// dst and src have equal length; src is read only.
func StepRow(dst, src []uint8, rule uint8) {
	for i := range src {
		dst[i] = rule >> Neighborhood(src, i) & 1
	}
}

// Apply computes the next generation of a periodic row under the given rule.
// The neighborhood code indexes the rule byte, bit 0 least significant. The
// input is never mutated and the result is a freshly allocated slice.
func Apply(row []uint8, rule int) ([]uint8, error) {
	if rule < 0 || rule > MaxRule {
		return nil, fmt.Errorf("%w: rule %d outside [0,%d]", ErrInvalidParameter, rule, MaxRule)
	}
	if len(row) == 0 {
		return nil, fmt.Errorf("%w: empty row", ErrInvalidParameter)
	}
	next := make([]uint8, len(row))
	StepRow(next, row, uint8(rule))
	return next, nil
}
