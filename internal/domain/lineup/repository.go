package lineup

import "context"

// Repository exposes lineup aggregate persistence. Upsert is keyed by
// match id and must replace the lineup row together with both child
// collections atomically; the store's uniqueness constraint on match id
// guarantees a single row per match under racing writers.
type Repository interface {
	GetByMatchID(ctx context.Context, matchID int64) (Lineup, bool, error)
	ListByMatchIDs(ctx context.Context, matchIDs []int64) ([]Lineup, error)
	Upsert(ctx context.Context, item Lineup) (Lineup, error)
	TotalsForPlayer(ctx context.Context, playerID int64) (PlayerTotals, error)
}
