//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"wilson-ca/internal/app"
	"wilson-ca/internal/core"
	"wilson-ca/internal/sims/wilsoncowan"
	"wilson-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := buildSim(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, cfg.Rate, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("wilson-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale+ui.StatusHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func buildSim(cfg *app.Config) (core.Sim, error) {
	if !cfg.Replay {
		return core.New(cfg.Sim, cfg.SimParams())
	}
	h, err := wilsoncowan.Run(context.Background(), wilsoncowan.FromMap(cfg.SimParams()), nil)
	if err != nil {
		return nil, err
	}
	return wilsoncowan.NewReplay(h), nil
}
