package sqlc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sqlc-dev/pqtype"

	"github.com/saeidalz13/battleship-console/engine"
)

type AnalyticsManager struct {
	queries Querier
}

var _ engine.Recorder = (*AnalyticsManager)(nil)

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

// RecordGame stores one finished game. Per player stats go into the stats
// column as JSON.
func (a *AnalyticsManager) RecordGame(ctx context.Context, result engine.Result) error {
	stats := pqtype.NullRawMessage{}
	if len(result.Players) > 0 {
		raw, err := json.Marshal(result.Players)
		if err != nil {
			return fmt.Errorf("failed to marshal stats of game %s: %w", result.GameID, err)
		}
		stats = pqtype.NullRawMessage{RawMessage: raw, Valid: true}
	}

	return a.queries.InsertGameResult(ctx, InsertGameResultParams{
		GameID:     result.GameID,
		Winner:     result.Winner,
		Loser:      result.Loser,
		TotalMoves: int32(result.TotalMoves()),
		Stats:      stats,
		FinishedAt: result.FinishedAt,
	})
}

func (a *AnalyticsManager) GetGamesPlayedCount(ctx context.Context) (int64, error) {
	return a.queries.CountGamesPlayed(ctx)
}

func (a *AnalyticsManager) GetWinsByPlayer(ctx context.Context, name string) (int64, error) {
	return a.queries.CountWinsByPlayer(ctx, name)
}
