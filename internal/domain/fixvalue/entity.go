package fixvalue

import (
	"time"

	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/shopspring/decimal"
)

// FixValue is the full-attendance daily base salary for a category in a given
// month. One row per (category, month).
type FixValue struct {
	ID          string
	Category    machine.Category
	Month       string // YYYY-MM
	FixSalCount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
