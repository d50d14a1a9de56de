package machine

import "context"

type MachineRepository interface {
	Create(ctx context.Context, m Machine) (Machine, error)
	GetByID(ctx context.Context, id string) (Machine, error)
	List(ctx context.Context) ([]Machine, error)
	Update(ctx context.Context, m Machine) (Machine, error)
	Delete(ctx context.Context, id string) error
	CountReferences(ctx context.Context, id string) (int64, error)
}

type FrameRepository interface {
	Create(ctx context.Context, f MachineFrame) (MachineFrame, error)
	GetByMachineMonth(ctx context.Context, machineID, month string) (MachineFrame, error)
	// InsertIfAbsent atomically inserts the frame unless one already exists for
	// the (machineID, month) pair. It never overwrites.
	InsertIfAbsent(ctx context.Context, f MachineFrame) error
	Update(ctx context.Context, machineID, month string, frames float64) (MachineFrame, error)
	Delete(ctx context.Context, machineID, month string) error
}
