package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"gridcaster/internal/app"
	"gridcaster/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Workers = 2
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log-file", "", "write logs here instead of discarding them")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	// the screen owns stdout and stderr while running
	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			cfg.NewLogger(os.Stderr).Fatal(err)
		}
		defer f.Close()
		out = f
	}
	log := cfg.NewLogger(out)
	if rejected := cfg.Apply(overrides.Map()); len(rejected) > 0 {
		log.WithField("keys", rejected).Warn("ignoring invalid overrides")
	}

	session, err := app.NewSession(cfg, log)
	if err != nil {
		cfg.NewLogger(os.Stderr).Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		cfg.NewLogger(os.Stderr).Fatal(err)
	}
	if err := screen.Init(); err != nil {
		cfg.NewLogger(os.Stderr).Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.Run(ctx, screen, session, cfg.TPS, log)
	stop()
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		cfg.NewLogger(os.Stderr).Fatal(err)
	}
}
