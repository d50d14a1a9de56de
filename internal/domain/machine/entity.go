package machine

import "time"

// Category drives the salary-computation rule downstream: Top machines are
// measured against a monthly frame target, Duppata machines against
// percentage pairs.
type Category string

const (
	CategoryTop     Category = "Top"
	CategoryDuppata Category = "Duppata"
)

func (c Category) Valid() bool {
	return c == CategoryTop || c == CategoryDuppata
}

type Machine struct {
	ID        string
	Name      string
	Category  Category
	Head      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MachineFrame is the monthly production target for a Top-category machine.
// One row per (machineID, month).
type MachineFrame struct {
	ID        string
	MachineID string
	Month     string // YYYY-MM
	Frames    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
