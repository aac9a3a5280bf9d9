package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/saeidalz13/battleship-solo/db"
	"github.com/saeidalz13/battleship-solo/db/sqlc"
	"github.com/saeidalz13/battleship-solo/internal"
	"github.com/saeidalz13/battleship-solo/internal/config"
	"github.com/saeidalz13/battleship-solo/internal/logging"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "battleship",
	Short: "Play Battleship against the computer",
	Long: `Battleship on a 10x10 grid against a computer opponent.

Run without a command to play in this terminal. Type "go" to start,
then enter a row and a column (1-10) for every shot.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
		return nil
	},
	RunE: runPlay,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openAnalytics connects to postgres when DATABASE_URL is set. Without
// it the returned manager records nothing.
func openAnalytics() (*sqlc.AnalyticsManager, func(), error) {
	serverIpNet := internal.ServerIpNet()
	if cfg.DatabaseUrl == "" {
		slog.Debug("DATABASE_URL not set, analytics disabled")
		return sqlc.NewDbManager(nil, serverIpNet).Analytics, func() {}, nil
	}

	conn, err := db.ConnectToDb(cfg.DatabaseUrl, db.DefaultMigrationDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	dm := sqlc.NewDbManager(sqlc.New(conn), serverIpNet)
	return dm.Analytics, func() { conn.Close() }, nil
}
