package sqlc

import (
	"context"
	"fmt"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

// RecordGame stores the result row of a finished game and bumps the
// per-server counters.
func (a *AnalyticsManager) RecordGame(ctx context.Context, arg CreateGameResultParams) error {
	if err := a.queries.CreateGameResult(ctx, arg); err != nil {
		return fmt.Errorf("failed to create game result %s: %w", arg.GameUuid, err)
	}

	if err := a.queries.IncrementGamesPlayedCount(ctx, arg.ServerIp); err != nil {
		return fmt.Errorf("failed to increment games played: %w", err)
	}

	if arg.Won {
		if err := a.queries.IncrementGamesWonCount(ctx, arg.ServerIp); err != nil {
			return fmt.Errorf("failed to increment games won: %w", err)
		}
	}
	return nil
}

func (a *AnalyticsManager) GetGameResult(ctx context.Context, gameUuid string) (GameResult, error) {
	return a.queries.GetGameResult(ctx, gameUuid)
}

func (a *AnalyticsManager) GetGamesPlayedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetGamesPlayedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetGamesWonCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetGamesWonCount(ctx, serverIpNet)
}
