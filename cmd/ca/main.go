//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"wolfram-ca/internal/app"
	"wolfram-ca/internal/ca"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	rule := cfg.Rule
	if cfg.Preset != "" {
		p, ok := ca.Presets()[cfg.Preset]
		if !ok {
			log.Fatalf("unknown preset %q", cfg.Preset)
		}
		rule = p.Rule
	}
	check := ca.Config{Rule: rule, Cells: cfg.Cells, Steps: cfg.Rows, Mode: ca.SeedMode(cfg.Mode), Seed: cfg.Seed}
	if err := check.Validate(); err != nil {
		log.Fatal(err)
	}

	board := app.NewBoard(cfg.Cells, cfg.Rows, uint8(rule), ca.SeedMode(cfg.Mode))
	board.Reset(cfg.Seed)

	game := app.New(board, cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle(fmt.Sprintf("wolfram-ca — rule %d", rule))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Cells*cfg.Scale, cfg.Rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
