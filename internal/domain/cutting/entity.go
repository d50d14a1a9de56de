package cutting

import (
	"time"

	"github.com/shopspring/decimal"
)

// ThreadPrice is a named per-piece cutting rate.
type ThreadPrice struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CuttingUser is a person doing thread cutting. They are tracked separately
// from machine workers.
type CuttingUser struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CuttingEntry is one rate line of a day's cutting work.
type CuttingEntry struct {
	ThreadPriceID string `json:"threadPriceId"`
	Quantity      int    `json:"quantity"`
}

// CuttingData is one cutting user's work for one day. One row per
// (cuttingUserID, date).
type CuttingData struct {
	ID            string
	CuttingUserID string
	Date          time.Time
	Entries       []CuttingEntry
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
