//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"wolfram-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a scrolling automaton board to the ebiten.Game interface.
type Game struct {
	board   *Board
	painter *render.GridPainter

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided board.
func New(board *Board, scale int, seed int64) *Game {
	w, h := board.Size()
	return &Game{
		board:    board,
		painter:  render.NewGridPainter(w, h),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reinitializes the board state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.board.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the automaton.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if (!g.paused) || g.tickOnce {
		g.board.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current board state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board.Cells(), g.onColor, g.offColor, g.scale)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("rule %d  [space] pause  [n] step  [r] reseed  [q] quit", g.board.Rule()))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.board.Size()
	return w * g.scale, h * g.scale
}
