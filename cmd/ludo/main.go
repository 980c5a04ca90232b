// Command ludo plays a game of Ludo in the terminal with bots and console players.
package main

import (
	"context"
	"os"
	"os/signal"

	"ludo/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("ludo: %v", err)
	}
	if cfg.RosterFile != "" {
		if err := config.LoadRoster(cfg.RosterFile); err != nil {
			config.Exitf("ludo: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		config.Exitf("ludo: %v", err)
	}
}
