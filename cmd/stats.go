package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the game counters of this server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.DatabaseUrl == "" {
			return errors.New("DATABASE_URL must be set to read stats")
		}

		analytics, closeDb, err := openAnalytics()
		if err != nil {
			return err
		}
		defer closeDb()

		created, err := analytics.GetGamesCreatedCount(cmd.Context())
		if err != nil {
			return err
		}
		wins, err := analytics.GetWinCounts(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "server:            %s\n", analytics.ServerIp().IPNet.IP)
		fmt.Fprintf(out, "games created:     %d\n", created)
		fmt.Fprintf(out, "won by player:     %d\n", wins.Player)
		fmt.Fprintf(out, "won by computer:   %d\n", wins.Opponent)
		return nil
	},
}

var version = "0.1.0" // set at build time using -ldflags

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "battleship v%s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}
