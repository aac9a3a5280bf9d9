package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/saeidalz13/battleship-solo/api"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

const (
	sessionCleanupInterval = time.Minute * 20
	shutdownTimeout        = time.Second * 10
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve games against the computer over websocket",
	Long: `Starts an HTTP server on PORT. Every websocket connection to
/battleship plays one game against the computer. GET /stats returns
the analytics counters.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analytics, closeDb, err := openAnalytics()
	if err != nil {
		return err
	}
	defer closeDb()

	newRng := func() *rand.Rand {
		return rand.New(rand.NewSource(cfg.RandSeed()))
	}

	gameManager := mb.NewBattleshipGameManager(newRng)
	sessionManager := mc.NewBattleshipSessionManager(sessionCleanupInterval)
	go sessionManager.CleanupPeriodically(ctx)

	rp := api.NewRequestProcessor(sessionManager, gameManager, analytics, newRng)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewMux(rp),
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()

		// Shutdown does not track hijacked websocket connections
		sessionManager.CloseAllSessions("server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("listening", "addr", server.Addr, "stage", cfg.Stage)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-shutdownDone
	return nil
}
