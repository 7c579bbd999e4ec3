package app

import "wolfram-ca/internal/ca"

// Board keeps a scrolling space-time window for the interactive viewer. The
// newest generation occupies row zero and history slides downward one row per
// step.
type Board struct {
	w, h int
	rule uint8
	mode ca.SeedMode
	cur  []uint8
	tmp  []uint8
}

// NewBoard creates a board of w cells showing the h most recent generations.
// Callers validate the rule and mode before constructing the board.
func NewBoard(w, h int, rule uint8, mode ca.SeedMode) *Board {
	return &Board{w: w, h: h, rule: rule, mode: mode, cur: make([]uint8, w*h), tmp: make([]uint8, w)}
}

// Size returns the board dimensions.
func (b *Board) Size() (int, int) { return b.w, b.h }

// Rule returns the rule code the board runs.
func (b *Board) Rule() int { return int(b.rule) }

// Cells exposes the render buffer, row-major with the newest generation
// first.
func (b *Board) Cells() []uint8 { return b.cur }

// Reset clears the history and reseeds the top row.
func (b *Board) Reset(seed int64) {
	for i := range b.cur {
		b.cur[i] = 0
	}
	ca.SeedRow(b.cur[:b.w], b.mode, seed)
}

// Step computes the next generation and scrolls history downwards.
func (b *Board) Step() {
	copy(b.tmp, b.cur[:b.w])
	copy(b.cur[b.w:], b.cur[:b.w*(b.h-1)])
	ca.StepRow(b.cur[:b.w], b.tmp, b.rule)
}
