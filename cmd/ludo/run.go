package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/dustin/go-humanize"
	"github.com/heroiclabs/nakama-common/runtime"

	"ludo/internal/app"
	"ludo/internal/app/setup"
	"ludo/internal/bot"
	"ludo/internal/config"
	"ludo/internal/dice"
	"ludo/internal/domain"
	"ludo/internal/logging"
	"ludo/internal/ports"
	"ludo/internal/ports/console"
	"ludo/internal/ports/sqlite"
	"ludo/internal/render"
)

const leaderboardSize = 10

func run(ctx context.Context, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := logging.New(stderr, logging.ParseLevel(cfg.LogLevel))

	seats := cfg.Seats(bot.DefaultNames(domain.MaxPlayers))
	names := make([]string, len(seats))
	for i, seat := range seats {
		names[i] = seat.Name
	}
	game, err := setup.NewGame(names)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = dice.NewSeed(); err != nil {
			return err
		}
	}

	choosers, policies, agents, err := seatChoosers(game, seats, seed, stdin, stdout, logger)
	if err != nil {
		return err
	}

	opts := []app.Option{app.WithMaxTurns(cfg.MaxTurns)}
	var store *sqlite.Store
	if cfg.DBPath != "" {
		store, err = sqlite.Open(ctx, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Warn("Failed to close history: %v", err)
			}
		}()
		opts = append(opts, app.WithHistory(store))
	}

	svc := app.NewService(dice.NewSeeded(seed), logger, opts...)
	sess, events, err := svc.StartSession(ctx, game, choosers, policies, seed)
	if err != nil {
		return err
	}

	interactive := len(agents) < len(game.Players)
	observe := func(_ app.TurnResult, events []app.Event) {
		for _, agent := range agents {
			for _, ev := range events {
				agent.OnGameEvent(ev)
			}
		}
		if err := render.Events(stdout, events); err != nil {
			logger.Warn("Failed to write events: %v", err)
		}
		if interactive {
			if err := render.Text(stdout, game.Snapshot()); err != nil {
				logger.Warn("Failed to draw board: %v", err)
			}
		}
	}
	observe(app.TurnResult{}, events)

	if _, err := svc.Run(ctx, sess, observe); err != nil {
		return err
	}
	if !interactive {
		if err := render.Text(stdout, game.Snapshot()); err != nil {
			return err
		}
	}

	if store != nil {
		return printLeaderboard(ctx, stdout, store)
	}
	return nil
}

// seatChoosers builds one chooser per seat. Console seats share a single
// reader so their prompts stay ordered.
func seatChoosers(game *domain.Game, seats []config.Seat, seed int64, stdin io.Reader, stdout io.Writer, logger runtime.Logger) ([]ports.Chooser, []string, []*bot.Agent, error) {
	rng := rand.New(rand.NewSource(seed))
	var human *console.Chooser

	choosers := make([]ports.Chooser, len(seats))
	policies := make([]string, len(seats))
	var agents []*bot.Agent
	for i, seat := range seats {
		name := game.Players[i].Name
		if seat.Policy == config.HumanPolicy {
			if human == nil {
				human = console.NewChooser(stdin, stdout)
			}
			choosers[i] = human
			policies[i] = config.HumanPolicy
			continue
		}

		level, err := bot.ParseLevel(seat.Policy)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("seat %d (%s): %w", i+1, name, err)
		}
		agent := bot.NewAgent(fmt.Sprintf("bot-%d", i+1), name, level, bot.NewBrain(level, name, rng), logger)
		choosers[i] = agent
		policies[i] = level.String()
		agents = append(agents, agent)
	}
	return choosers, policies, agents, nil
}

func printLeaderboard(ctx context.Context, w io.Writer, history ports.HistoryPort) error {
	entries, err := history.Leaderboard(ctx, leaderboardSize)
	if err != nil {
		return fmt.Errorf("leaderboard: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}
	fmt.Fprintln(w, "Leaderboard:")
	for i, e := range entries {
		fmt.Fprintf(w, "  %s %s: %d wins / %d games\n", humanize.Ordinal(i+1), e.Name, e.Wins, e.Played)
	}
	return nil
}
