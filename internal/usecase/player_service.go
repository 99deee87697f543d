package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/localxi/local-xi-backend/internal/domain/player"
)

type CreatePlayerInput struct {
	Name      string
	Positions []string
	Number    int
}

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	sort.Slice(players, func(i, j int) bool {
		return players[i].Number < players[j].Number
	})

	return players, nil
}

func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	item := player.Player{
		Name:      strings.TrimSpace(input.Name),
		Positions: normalizePositions(input.Positions),
		Number:    input.Number,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Pre-check against the store so a duplicate shirt number gets its
	// own message instead of surfacing as a constraint violation.
	taken, err := s.playerRepo.ExistsByNumber(ctx, item.Number)
	if err != nil {
		return player.Player{}, fmt.Errorf("check shirt number: %w", err)
	}
	if taken {
		return player.Player{}, fmt.Errorf("%w: shirt number %d already exists", ErrInvalidInput, item.Number)
	}

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return created, nil
}

// DeleteMany removes all matching players. Ids with no stored player
// are a silent no-op, not an error.
func (s *PlayerService) DeleteMany(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: ids are required", ErrInvalidInput)
	}

	if err := s.playerRepo.DeleteByIDs(ctx, ids); err != nil {
		return fmt.Errorf("delete players: %w", err)
	}

	return nil
}

func normalizePositions(positions []string) []string {
	cleaned := make([]string, 0, len(positions))
	for _, pos := range positions {
		pos = strings.TrimSpace(pos)
		if pos == "" {
			continue
		}
		cleaned = append(cleaned, pos)
	}

	return cleaned
}
