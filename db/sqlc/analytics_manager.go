package sqlc

import (
	"context"
	"database/sql"
	"errors"
	"net"

	"github.com/sqlc-dev/pqtype"
)

type WinCounts struct {
	Player   int64
	Opponent int64
}

// AnalyticsManager keeps the per server counters. Every call gets its
// own QuerierCtxTimeout.
type AnalyticsManager struct {
	queries  Querier
	serverIp pqtype.Inet
}

func NewAnalyticsManager(queries Querier, serverIpNet net.IPNet) *AnalyticsManager {
	return &AnalyticsManager{
		queries:  queries,
		serverIp: pqtype.Inet{IPNet: serverIpNet, Valid: true},
	}
}

func (a *AnalyticsManager) Enabled() bool {
	return a.queries != nil
}

func (a *AnalyticsManager) ServerIp() pqtype.Inet {
	return a.serverIp
}

func (a *AnalyticsManager) IncrementGamesCreatedCount(ctx context.Context) error {
	if !a.Enabled() {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.AnalyticsIncrementGamesCreatedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) IncrementGamesWonCount(ctx context.Context, playerWon bool) error {
	if !a.Enabled() {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	if playerWon {
		return a.queries.AnalyticsIncrementPlayerWinsCount(ctx, a.serverIp)
	}
	return a.queries.AnalyticsIncrementOpponentWinsCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) GetGamesCreatedCount(ctx context.Context) (int64, error) {
	if !a.Enabled() {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	created, err := a.queries.AnalyticsGetGamesCreatedCount(ctx, a.serverIp)
	// no row until this server records its first game
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return created, err
}

func (a *AnalyticsManager) GetWinCounts(ctx context.Context) (WinCounts, error) {
	if !a.Enabled() {
		return WinCounts{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	row, err := a.queries.AnalyticsGetWinCounts(ctx, a.serverIp)
	if errors.Is(err, sql.ErrNoRows) {
		return WinCounts{}, nil
	}
	if err != nil {
		return WinCounts{}, err
	}
	return WinCounts{Player: row.GamesWonByPlayer, Opponent: row.GamesWonByOpponent}, nil
}
