package workrecord

import (
	"context"

	"github.com/factrack/factrack-backend-go/internal/domain/machine"
)

// SearchFilter narrows Search results. Zero-valued fields are ignored.
type SearchFilter struct {
	WorkerID  string
	MachineID string
	Month     string // YYYY-MM
}

type WorkRecordRepository interface {
	Create(ctx context.Context, wr WorkRecord) (WorkRecord, error)
	GetByID(ctx context.Context, id string) (WorkRecord, error)
	// Search returns matching records, newest date first.
	Search(ctx context.Context, filter SearchFilter) ([]WorkRecordDetail, error)
	Update(ctx context.Context, wr WorkRecord) (WorkRecord, error)
	Delete(ctx context.Context, id string) error
	// ListMachinesByWorker returns the distinct machines a worker has work
	// records on.
	ListMachinesByWorker(ctx context.Context, workerID string) ([]machine.Machine, error)
}
