package memory

import (
	"context"
	"sync"

	"github.com/localxi/local-xi-backend/internal/domain/lineup"
)

// LineupRepository keys lineups by match id; a single mutex serializes
// upserts so racing writers can never leave two rows for one match.
type LineupRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byMatch map[int64]lineup.Lineup
}

func NewLineupRepository() *LineupRepository {
	return &LineupRepository{byMatch: make(map[int64]lineup.Lineup)}
}

func (r *LineupRepository) GetByMatchID(_ context.Context, matchID int64) (lineup.Lineup, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byMatch[matchID]
	if !ok {
		return lineup.Lineup{}, false, nil
	}

	return cloneLineup(item), true, nil
}

func (r *LineupRepository) ListByMatchIDs(_ context.Context, matchIDs []int64) ([]lineup.Lineup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lineup.Lineup, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		item, ok := r.byMatch[matchID]
		if !ok {
			continue
		}
		out = append(out, cloneLineup(item))
	}

	return out, nil
}

func (r *LineupRepository) Upsert(_ context.Context, item lineup.Lineup) (lineup.Lineup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byMatch[item.MatchID]; ok {
		item.ID = existing.ID
	} else {
		r.nextID++
		item.ID = r.nextID
	}
	r.byMatch[item.MatchID] = cloneLineup(item)

	return cloneLineup(item), nil
}

func (r *LineupRepository) TotalsForPlayer(_ context.Context, playerID int64) (lineup.PlayerTotals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := lineup.PlayerTotals{PlayerID: playerID}
	for _, item := range r.byMatch {
		for _, stat := range item.PlayerStats {
			if stat.PlayerID != playerID {
				continue
			}
			totals.Goals += stat.Goals
			totals.Assists += stat.Assists
			totals.YellowCards += stat.YellowCards
			totals.RedCards += stat.RedCards
		}
	}

	return totals, nil
}

func cloneLineup(item lineup.Lineup) lineup.Lineup {
	copied := item
	copied.CaptainPlayerID = cloneInt64Ptr(item.CaptainPlayerID)
	copied.Slots = make([]lineup.Slot, len(item.Slots))
	for i, s := range item.Slots {
		s.PlayerID = cloneInt64Ptr(s.PlayerID)
		s.Rating = cloneIntPtr(s.Rating)
		s.Goals = cloneIntPtr(s.Goals)
		s.Assists = cloneIntPtr(s.Assists)
		s.YellowCards = cloneIntPtr(s.YellowCards)
		s.RedCards = cloneIntPtr(s.RedCards)
		copied.Slots[i] = s
	}
	copied.PlayerStats = append([]lineup.PlayerStat(nil), item.PlayerStats...)
	return copied
}
