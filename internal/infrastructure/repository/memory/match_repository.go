package memory

import (
	"context"
	"sync"

	"github.com/localxi/local-xi-backend/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]match.Match
}

func NewMatchRepository(seed []match.Match) *MatchRepository {
	r := &MatchRepository{items: make(map[int64]match.Match, len(seed))}
	for _, m := range seed {
		if m.ID == 0 {
			r.nextID++
			m.ID = r.nextID
		} else if m.ID > r.nextID {
			r.nextID = m.ID
		}
		r.items[m.ID] = cloneMatch(m)
	}

	return r
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, m := range r.items {
		out = append(out, cloneMatch(m))
	}

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[id]
	if !ok {
		return match.Match{}, false, nil
	}

	return cloneMatch(m), true, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = cloneMatch(item)

	return item, nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneMatch(item)

	return item, nil
}

func (r *MatchRepository) DeleteByIDs(_ context.Context, ids []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		delete(r.items, id)
	}

	return nil
}

func cloneMatch(item match.Match) match.Match {
	copied := item
	copied.GoalsFor = cloneIntPtr(item.GoalsFor)
	copied.GoalsAgainst = cloneIntPtr(item.GoalsAgainst)
	return copied
}

func cloneIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}

func cloneInt64Ptr(v *int64) *int64 {
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}
