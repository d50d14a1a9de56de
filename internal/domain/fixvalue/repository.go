package fixvalue

import (
	"context"

	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/shopspring/decimal"
)

type FixValueRepository interface {
	Create(ctx context.Context, fv FixValue) (FixValue, error)
	GetByCategoryMonth(ctx context.Context, category machine.Category, month string) (FixValue, error)
	// InsertIfAbsent atomically inserts the value unless one already exists for
	// the (category, month) pair. It never overwrites.
	InsertIfAbsent(ctx context.Context, fv FixValue) error
	Update(ctx context.Context, category machine.Category, month string, fixSalCount decimal.Decimal) (FixValue, error)
	Delete(ctx context.Context, category machine.Category, month string) error
}
