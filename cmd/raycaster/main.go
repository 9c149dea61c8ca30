//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"gridcaster/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	log := cfg.NewLogger(os.Stderr)
	if rejected := cfg.Apply(overrides.Map()); len(rejected) > 0 {
		log.WithField("keys", rejected).Warn("ignoring invalid overrides")
	}

	session, err := app.NewSession(cfg, log)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(session, cfg.Scale, cfg.TPS, log)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("gridcaster — " + session.Level().Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
