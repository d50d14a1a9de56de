package workrecord

import (
	"time"

	"github.com/shopspring/decimal"
)

type Shift string

const (
	ShiftDay   Shift = "day"
	ShiftNight Shift = "night"
)

func (s Shift) Valid() bool {
	return s == ShiftDay || s == ShiftNight
}

// WorkRecord is a flat per-day record from the older bookkeeping flow.
// Frames, Bonus, Salary and Total are derived from production and the
// machine's head count at write time and stored alongside the raw figures.
type WorkRecord struct {
	ID         string
	WorkerID   string
	MachineID  string
	Date       time.Time
	WorkShift  Shift
	Production float64
	Frames     float64
	Bonus      decimal.Decimal
	Salary     decimal.Decimal
	Total      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WorkRecordDetail is a record joined with worker and machine names.
type WorkRecordDetail struct {
	WorkRecord
	WorkerName  string
	MachineName string
}
