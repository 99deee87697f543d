package memory

import (
	"context"
	"sync"

	"github.com/localxi/local-xi-backend/internal/domain/formation"
)

type FormationRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]formation.Formation
}

func NewFormationRepository(seed []formation.Formation) *FormationRepository {
	r := &FormationRepository{items: make(map[int64]formation.Formation, len(seed))}
	for _, f := range seed {
		if f.ID == 0 {
			r.nextID++
			f.ID = r.nextID
		} else if f.ID > r.nextID {
			r.nextID = f.ID
		}
		r.items[f.ID] = cloneFormation(f)
	}

	return r
}

func (r *FormationRepository) List(_ context.Context) ([]formation.Formation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]formation.Formation, 0, len(r.items))
	for _, f := range r.items {
		out = append(out, cloneFormation(f))
	}

	return out, nil
}

func (r *FormationRepository) GetByID(_ context.Context, id int64) (formation.Formation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.items[id]
	if !ok {
		return formation.Formation{}, false, nil
	}

	return cloneFormation(f), true, nil
}

func (r *FormationRepository) Create(_ context.Context, item formation.Formation) (formation.Formation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = cloneFormation(item)

	return item, nil
}

func (r *FormationRepository) Update(_ context.Context, item formation.Formation) (formation.Formation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneFormation(item)

	return item, nil
}

func (r *FormationRepository) DeleteByIDs(_ context.Context, ids []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		delete(r.items, id)
	}

	return nil
}

func cloneFormation(item formation.Formation) formation.Formation {
	copied := item
	copied.Slots = make([]formation.Slot, len(item.Slots))
	for i, s := range item.Slots {
		s.PlayerID = cloneInt64Ptr(s.PlayerID)
		copied.Slots[i] = s
	}
	return copied
}
