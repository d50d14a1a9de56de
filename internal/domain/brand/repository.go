package brand

import "context"

type ThreadBrandRepository interface {
	Create(ctx context.Context, tb ThreadBrand) (ThreadBrand, error)
	GetByID(ctx context.Context, id string) (ThreadBrand, error)
	List(ctx context.Context) ([]ThreadBrandDetail, error)
	Update(ctx context.Context, tb ThreadBrand) (ThreadBrand, error)
	Delete(ctx context.Context, id string) error
	CountChildren(ctx context.Context, id string) (int64, error)
}
