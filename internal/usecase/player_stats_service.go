package usecase

import (
	"context"
	"fmt"

	"github.com/localxi/local-xi-backend/internal/domain/lineup"
)

type PlayerStatsService struct {
	lineupRepo lineup.Repository
}

func NewPlayerStatsService(lineupRepo lineup.Repository) *PlayerStatsService {
	return &PlayerStatsService{lineupRepo: lineupRepo}
}

// Totals sums a player's stat rows across every stored lineup. A
// player with no rows gets all-zero totals, never a missing result.
func (s *PlayerStatsService) Totals(ctx context.Context, playerID int64) (lineup.PlayerTotals, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.Totals")
	defer span.End()

	totals, err := s.lineupRepo.TotalsForPlayer(ctx, playerID)
	if err != nil {
		return lineup.PlayerTotals{}, fmt.Errorf("total stats for player: %w", err)
	}
	totals.PlayerID = playerID

	return totals, nil
}
