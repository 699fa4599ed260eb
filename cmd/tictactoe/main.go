package main

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/config"
	"ctchen222/Tic-Tac-Toe-AI/internal/console"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"ctchen222/Tic-Tac-Toe-AI/internal/logger"
	"ctchen222/Tic-Tac-Toe-AI/internal/match"
	"ctchen222/Tic-Tac-Toe-AI/internal/telemetry"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger.Init(cfg.Level(), os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		slog.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}

	err = run(ctx, cfg, console.New(os.Stdin, os.Stdout))

	// The signal context may already be done; flush on a fresh one.
	if shutdownErr := shutdown(context.Background()); shutdownErr != nil {
		slog.Warn("error shutting down telemetry", "error", shutdownErr)
	}

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, io.EOF):
		fmt.Fprintln(os.Stdout, "\nGoodbye.")
	default:
		slog.Error("game aborted", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, term *console.Console) error {
	x, err := seat(ctx, cfg, term, game.PlayerX, cfg.PlayerX)
	if err != nil {
		return err
	}
	o, err := seat(ctx, cfg, term, game.PlayerO, cfg.PlayerO)
	if err != nil {
		return err
	}

	slog.Info("starting", "x", x.Name(), "o", o.Name(), "rounds", cfg.Rounds)

	tally, err := match.Series(ctx, x, o, cfg.Rounds, term)
	if cfg.Rounds > 1 && tally.Total() > 0 {
		term.PrintTally(x, o, tally)
	}
	return err
}

// seat builds the agent for piece, asking on the console when the config
// leaves it unset.
func seat(ctx context.Context, cfg *config.Config, term *console.Console, piece game.PlayerMark, configured string) (bot.Agent, error) {
	var kind bot.Kind
	if configured != "" {
		k, err := bot.ParseKind(configured)
		if err != nil {
			return nil, err
		}
		kind = k
	} else {
		k, err := term.ChooseKind(ctx, piece)
		if err != nil {
			return nil, err
		}
		kind = k
	}

	opts := []bot.Option{
		bot.WithSelector(term),
		bot.WithWeights(cfg.Greedy),
	}
	if cfg.Seed != 0 {
		// Offset by seat so X and O do not mirror each other.
		stream := uint64(0)
		if piece == game.PlayerO {
			stream = 1
		}
		opts = append(opts, bot.WithRand(rand.New(rand.NewPCG(cfg.Seed, stream))))
	}
	return bot.New(kind, piece, opts...)
}
