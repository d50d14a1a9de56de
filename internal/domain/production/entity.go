package production

import (
	"time"

	"github.com/factrack/factrack-backend-go/internal/domain/machine"
)

// FramePair is one Duppata measurement: pieces produced against the frame
// size they were produced on. A Duppata record carries one to three pairs.
type FramePair struct {
	Production float64 `json:"production"`
	Frame      float64 `json:"frame"`
}

// WorkerProduction is one worker's output on one machine for one day.
// Category is copied from the machine at write time so the salary engine
// never needs a join to decide which rule applies. Top records carry
// Production, Duppata records carry Frames.
type WorkerProduction struct {
	ID         string
	WorkerID   string
	MachineID  string
	Date       time.Time
	Category   machine.Category
	Production *float64
	Frames     []FramePair
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WorkerProductionDetail is a production record joined with the worker and
// machine names, as list endpoints return it.
type WorkerProductionDetail struct {
	WorkerProduction
	WorkerName  string
	MachineName string
}
