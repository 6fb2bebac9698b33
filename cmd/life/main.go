//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"canvas-life/internal/app"
	"canvas-life/internal/core"
	_ "canvas-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim, err := factory(nil)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg)
	ebiten.SetWindowTitle("canvas-life — " + sim.Name())
	ebiten.SetVsyncEnabled(cfg.VSync)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
