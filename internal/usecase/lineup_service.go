package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/localxi/local-xi-backend/internal/domain/lineup"
)

// StatSource identifies which branch produced a lineup's stat rows:
// the explicit payload list, or totals derived from slot counters.
type StatSource string

const (
	StatSourcePayload StatSource = "payload"
	StatSourceSlots   StatSource = "slots"
)

type UpsertLineupSlot struct {
	SlotID      string
	Pos         string
	PlayerID    *int64
	Captain     bool
	Rating      *int
	Goals       *int
	Assists     *int
	YellowCards *int
	RedCards    *int
}

type UpsertLineupStat struct {
	PlayerID    *int64
	Goals       *int
	Assists     *int
	YellowCards *int
	RedCards    *int
}

// UpsertLineupInput is a full-replacement payload. Slots must be
// present: an empty list means "no one selected yet", a nil list is a
// malformed request. PlayerStats is optional; when non-empty it is the
// sole source of truth for the lineup's stat rows.
type UpsertLineupInput struct {
	FormationID     *int64
	CaptainPlayerID *int64
	Slots           []UpsertLineupSlot
	PlayerStats     []UpsertLineupStat
}

type LineupService struct {
	lineupRepo lineup.Repository
}

func NewLineupService(lineupRepo lineup.Repository) *LineupService {
	return &LineupService{lineupRepo: lineupRepo}
}

func (s *LineupService) GetByMatch(ctx context.Context, matchID int64) (lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.GetByMatch")
	defer span.End()

	item, ok, err := s.lineupRepo.GetByMatchID(ctx, matchID)
	if err != nil {
		return lineup.Lineup{}, fmt.Errorf("get lineup by match: %w", err)
	}
	if !ok {
		return lineup.Lineup{}, fmt.Errorf("%w: no lineup for match %d", ErrNotFound, matchID)
	}

	return item, nil
}

// UpsertForMatch rebuilds the lineup aggregate for one match. Slots
// are replaced wholesale and stat rows are reconciled from one of two
// sources; every validation runs before the single repository write,
// so a failed payload leaves the stored aggregate untouched.
func (s *LineupService) UpsertForMatch(ctx context.Context, matchID int64, input UpsertLineupInput) (lineup.Lineup, StatSource, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.UpsertForMatch")
	defer span.End()

	if input.FormationID == nil {
		return lineup.Lineup{}, "", fmt.Errorf("%w: formationId is required", ErrInvalidInput)
	}
	if input.Slots == nil {
		return lineup.Lineup{}, "", fmt.Errorf("%w: slots are required", ErrInvalidInput)
	}

	existing, ok, err := s.lineupRepo.GetByMatchID(ctx, matchID)
	if err != nil {
		return lineup.Lineup{}, "", fmt.Errorf("get lineup by match: %w", err)
	}

	item := lineup.Lineup{
		MatchID:     matchID,
		FormationID: *input.FormationID,
		// nil replaces a previously set captain; there is no
		// merge-by-omission for this field.
		CaptainPlayerID: input.CaptainPlayerID,
	}
	if ok {
		item.ID = existing.ID
	}

	slots := make([]lineup.Slot, 0, len(input.Slots))
	for _, in := range input.Slots {
		slotID := strings.TrimSpace(in.SlotID)
		if slotID == "" {
			return lineup.Lineup{}, "", fmt.Errorf("%w: slotId is required", ErrInvalidInput)
		}
		pos := strings.TrimSpace(in.Pos)
		if pos == "" {
			return lineup.Lineup{}, "", fmt.Errorf("%w: pos is required", ErrInvalidInput)
		}

		slots = append(slots, lineup.Slot{
			SlotID:      slotID,
			Pos:         pos,
			PlayerID:    in.PlayerID,
			Captain:     in.Captain,
			Rating:      in.Rating,
			Goals:       in.Goals,
			Assists:     in.Assists,
			YellowCards: in.YellowCards,
			RedCards:    in.RedCards,
		})
	}
	item.Slots = slots

	source := StatSourceSlots
	if len(input.PlayerStats) > 0 {
		source = StatSourcePayload
		stats, err := statsFromPayload(input.PlayerStats)
		if err != nil {
			return lineup.Lineup{}, "", err
		}
		item.PlayerStats = stats
	} else {
		item.PlayerStats = statsFromSlots(item.Slots)
	}

	saved, err := s.lineupRepo.Upsert(ctx, item)
	if err != nil {
		return lineup.Lineup{}, "", fmt.Errorf("save lineup: %w", err)
	}

	return saved, source, nil
}

// Summaries returns the {matchId, formationId} pairs for every given
// match that has a stored lineup; matches without one are omitted.
func (s *LineupService) Summaries(ctx context.Context, matchIDs []int64) ([]lineup.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Summaries")
	defer span.End()

	if matchIDs == nil {
		return nil, fmt.Errorf("%w: ids are required", ErrInvalidInput)
	}
	if len(matchIDs) == 0 {
		return []lineup.Summary{}, nil
	}

	lineups, err := s.lineupRepo.ListByMatchIDs(ctx, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("list lineups by match ids: %w", err)
	}

	out := make([]lineup.Summary, 0, len(lineups))
	for _, l := range lineups {
		out = append(out, lineup.Summary{MatchID: l.MatchID, FormationID: l.FormationID})
	}

	return out, nil
}

// statsFromPayload takes the explicit list as the sole source of
// truth: one row per entry, values as given, zero when absent.
func statsFromPayload(entries []UpsertLineupStat) ([]lineup.PlayerStat, error) {
	stats := make([]lineup.PlayerStat, 0, len(entries))
	seen := make(map[int64]struct{}, len(entries))
	for _, in := range entries {
		if in.PlayerID == nil {
			return nil, fmt.Errorf("%w: playerStats.playerId is required", ErrInvalidInput)
		}
		if _, dup := seen[*in.PlayerID]; dup {
			return nil, fmt.Errorf("%w: duplicate playerStats entry for player %d", ErrInvalidInput, *in.PlayerID)
		}
		seen[*in.PlayerID] = struct{}{}

		stats = append(stats, lineup.PlayerStat{
			PlayerID:    *in.PlayerID,
			Goals:       intOrZero(in.Goals),
			Assists:     intOrZero(in.Assists),
			YellowCards: intOrZero(in.YellowCards),
			RedCards:    intOrZero(in.RedCards),
		})
	}

	return stats, nil
}

// statsFromSlots folds the legacy per-slot counters into one row per
// distinct player, so payloads from older clients still persist into
// the stat table. Nil counts as 0 and negatives are clamped to 0.
func statsFromSlots(slots []lineup.Slot) []lineup.PlayerStat {
	index := make(map[int64]int, len(slots))
	out := make([]lineup.PlayerStat, 0, len(slots))
	for _, s := range slots {
		if s.PlayerID == nil {
			continue
		}

		i, ok := index[*s.PlayerID]
		if !ok {
			i = len(out)
			index[*s.PlayerID] = i
			out = append(out, lineup.PlayerStat{PlayerID: *s.PlayerID})
		}

		out[i].Goals += clampNonNegative(s.Goals)
		out[i].Assists += clampNonNegative(s.Assists)
		out[i].YellowCards += clampNonNegative(s.YellowCards)
		out[i].RedCards += clampNonNegative(s.RedCards)
	}

	return out
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func clampNonNegative(v *int) int {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}
