package workrecord

import (
	"context"

	"github.com/factrack/factrack-backend-go/internal/domain/machine"
)

type WorkRecordService interface {
	Create(ctx context.Context, req CreateWorkRecordRequest) (WorkRecordResponse, error)
	// Search returns matching records and ErrNoWorkRecords when nothing
	// matches.
	Search(ctx context.Context, filter SearchFilter) ([]WorkRecordResponse, error)
	Update(ctx context.Context, req UpdateWorkRecordRequest) (WorkRecordResponse, error)
	Delete(ctx context.Context, id string) error
	// RefMachines lists the machines a worker has recorded work on.
	RefMachines(ctx context.Context, workerID string) ([]machine.MachineResponse, error)
}
