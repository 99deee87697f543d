package formation

import "context"

// Repository describes formation persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Formation, error)
	GetByID(ctx context.Context, id int64) (Formation, bool, error)
	Create(ctx context.Context, item Formation) (Formation, error)
	Update(ctx context.Context, item Formation) (Formation, error)
	DeleteByIDs(ctx context.Context, ids []int64) error
}
