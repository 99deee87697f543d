package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	ExistsByNumber(ctx context.Context, number int) (bool, error)
	Create(ctx context.Context, item Player) (Player, error)
	DeleteByIDs(ctx context.Context, ids []int64) error
}
