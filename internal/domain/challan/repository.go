package challan

import (
	"context"
	"time"
)

// ListFilter narrows List results. Month is required, the brand filters are
// optional: CompanyID matches challans carrying an entry for that company,
// MainBrandID matches the derived main brand.
type ListFilter struct {
	Month       string // YYYY-MM
	CompanyID   string
	MainBrandID string
}

type ThreadChallanRepository interface {
	Create(ctx context.Context, tc ThreadChallan) (ThreadChallan, error)
	GetByID(ctx context.Context, id string) (ThreadChallan, error)
	// List returns matching challans ordered by challan number ascending,
	// then date descending.
	List(ctx context.Context, filter ListFilter) ([]ThreadChallan, error)
	// ListByDateRange returns every challan with from <= date < to, for the
	// monthly rollup.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]ThreadChallan, error)
	Update(ctx context.Context, tc ThreadChallan) (ThreadChallan, error)
	Delete(ctx context.Context, id string) error
	// CountByBrand counts challans that reference the brand, as main brand or
	// through an entry.
	CountByBrand(ctx context.Context, brandID string) (int64, error)
}
