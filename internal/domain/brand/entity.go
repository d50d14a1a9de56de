package brand

import (
	"time"

	"github.com/shopspring/decimal"
)

// ThreadBrand is a thread supplier. Brands form a hierarchy at most two
// levels deep: a sub-brand points at its parent through ParentBrandID, a
// main brand has none.
type ThreadBrand struct {
	ID            string
	CompanyName   string
	OneBoxPrice   decimal.Decimal
	ParentBrandID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ThreadBrandDetail is a brand joined with its parent's name.
type ThreadBrandDetail struct {
	ThreadBrand
	ParentBrandName *string
}
