package cutting

import (
	"context"
	"time"
)

type ThreadPriceRepository interface {
	Create(ctx context.Context, tp ThreadPrice) (ThreadPrice, error)
	GetByID(ctx context.Context, id string) (ThreadPrice, error)
	List(ctx context.Context) ([]ThreadPrice, error)
	Update(ctx context.Context, tp ThreadPrice) (ThreadPrice, error)
	Delete(ctx context.Context, id string) error
}

type CuttingUserRepository interface {
	Create(ctx context.Context, cu CuttingUser) (CuttingUser, error)
	GetByID(ctx context.Context, id string) (CuttingUser, error)
	List(ctx context.Context) ([]CuttingUser, error)
	Update(ctx context.Context, cu CuttingUser) (CuttingUser, error)
	Delete(ctx context.Context, id string) error
}

type CuttingDataRepository interface {
	Create(ctx context.Context, cd CuttingData) (CuttingData, error)
	GetByID(ctx context.Context, id string) (CuttingData, error)
	// List returns all cutting data, newest date first. When from/to are
	// non-zero only rows with from <= date < to are returned.
	List(ctx context.Context, from, to time.Time) ([]CuttingData, error)
	Update(ctx context.Context, cd CuttingData) (CuttingData, error)
	Delete(ctx context.Context, id string) error
	CountByThreadPrice(ctx context.Context, threadPriceID string) (int64, error)
	CountByUser(ctx context.Context, cuttingUserID string) (int64, error)
}
