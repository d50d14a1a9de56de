package production

import "context"

// ListFilter narrows List results. Zero-valued fields are ignored.
type ListFilter struct {
	MonthYear string // YYYY-MM
	WorkerID  string
	MachineID string
}

type WorkerProductionRepository interface {
	Create(ctx context.Context, wp WorkerProduction) (WorkerProduction, error)
	GetByID(ctx context.Context, id string) (WorkerProduction, error)
	// List returns records matching the filter, newest date first.
	List(ctx context.Context, filter ListFilter) ([]WorkerProductionDetail, error)
	// ListByWorkerMachineMonth returns the records the salary engine folds
	// over, oldest date first.
	ListByWorkerMachineMonth(ctx context.Context, workerID, machineID, month string) ([]WorkerProduction, error)
	Update(ctx context.Context, wp WorkerProduction) (WorkerProduction, error)
	Delete(ctx context.Context, id string) error
	CountByWorker(ctx context.Context, workerID string) (int64, error)
	CountByMachine(ctx context.Context, machineID string) (int64, error)
}
