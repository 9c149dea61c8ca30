package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gridcaster/internal/app"
	"gridcaster/internal/assets"
	"gridcaster/internal/raycast"
	"gridcaster/internal/world"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "frame.png", "output image (.png or .bmp)")
	heading := flag.Float64("heading", 0, "player heading in radians, added to the spawn heading")
	walk := flag.Float64("walk", 0, "seconds to walk forward from the spawn before rendering")
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
	if err := session.Player().Rotate(*heading); err != nil {
		log.Fatal(err)
	}
	dt := 1 / float64(cfg.TPS)
	for t := 0.0; t < *walk; t += dt {
		if err := session.Step(world.Input{Forward: true}, dt); err != nil {
			log.Fatal(err)
		}
	}

	frame, err := session.Render(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := assets.EncodeFrame(f, frame, assets.FormatFor(*out)); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	p := session.Player()
	centre := raycast.CastColumn(p, frame.W/2, frame.W, session.Renderer().Params().MaxDist)
	fmt.Printf("Wrote %s (%dx%d) from %s at x=%.2f y=%.2f heading=%.3f\n",
		*out, frame.W, frame.H, session.Level().Name, p.Pos.X, p.Pos.Y, p.Heading)
	if centre.Hit {
		fmt.Printf("Centre column: wall cell (%d,%d) at %.3f, %s-side, u=%.3f\n",
			centre.Cell.X, centre.Cell.Y, centre.Distance, centre.Side, centre.U)
	} else {
		fmt.Printf("Centre column: no wall within %.1f\n", centre.Distance)
	}
}
