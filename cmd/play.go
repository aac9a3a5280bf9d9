package main

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/saeidalz13/battleship-solo/internal/console"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	input := console.NewInput(cmd.InOrStdin(), out)

	if err := input.WaitForGo(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	analytics, closeDb, err := openAnalytics()
	if err != nil {
		return err
	}
	defer closeDb()

	rng := rand.New(rand.NewSource(cfg.RandSeed()))
	game, err := mb.NewGame(rng)
	if err != nil {
		return err
	}

	if err := analytics.IncrementGamesCreatedCount(ctx); err != nil {
		slog.Warn("failed to record created game", "error", err)
	}

	winner, err := mb.Play(ctx, game, input, mb.NewRandomPolicy(rng), console.NewDisplay(out))
	if err != nil {
		if errors.Is(err, io.EOF) {
			slog.Info("input closed, leaving game", "game", game.Uuid(), "turn", game.Turn())
			return nil
		}
		return err
	}

	if err := analytics.IncrementGamesWonCount(ctx, winner == mb.RoleHuman); err != nil {
		slog.Warn("failed to record game result", "error", err)
	}
	return nil
}
