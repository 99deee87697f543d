package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/localxi/local-xi-backend/internal/domain/match"
)

type CreateMatchInput struct {
	Date         time.Time
	Opponent     string
	Home         bool
	GoalsFor     *int
	GoalsAgainst *int
}

// MatchPatch carries only the fields the client supplied; nil fields
// keep their stored values.
type MatchPatch struct {
	Date         *time.Time
	Opponent     *string
	Home         *bool
	GoalsFor     *int
	GoalsAgainst *int
}

type MatchService struct {
	matchRepo match.Repository
}

func NewMatchService(matchRepo match.Repository) *MatchService {
	return &MatchService{matchRepo: matchRepo}
}

func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].Date.Equal(matches[j].Date) {
			return matches[i].Date.Before(matches[j].Date)
		}
		return matches[i].ID < matches[j].ID
	})

	return matches, nil
}

func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	item := match.Match{
		Date:         input.Date,
		Opponent:     strings.TrimSpace(input.Opponent),
		Home:         input.Home,
		GoalsFor:     input.GoalsFor,
		GoalsAgainst: input.GoalsAgainst,
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.matchRepo.Create(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return created, nil
}

// Update applies the patch on top of the stored match and re-validates
// the merged record in full before saving.
func (s *MatchService) Update(ctx context.Context, id int64, patch MatchPatch) (match.Match, error) {
	existing, ok, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !ok {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, id)
	}

	if patch.Date != nil {
		existing.Date = *patch.Date
	}
	if patch.Opponent != nil {
		existing.Opponent = strings.TrimSpace(*patch.Opponent)
	}
	if patch.Home != nil {
		existing.Home = *patch.Home
	}
	if patch.GoalsFor != nil {
		existing.GoalsFor = patch.GoalsFor
	}
	if patch.GoalsAgainst != nil {
		existing.GoalsAgainst = patch.GoalsAgainst
	}

	if err := existing.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.matchRepo.Update(ctx, existing)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	return saved, nil
}

func (s *MatchService) DeleteMany(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: ids are required", ErrInvalidInput)
	}

	if err := s.matchRepo.DeleteByIDs(ctx, ids); err != nil {
		return fmt.Errorf("delete matches: %w", err)
	}

	return nil
}
