package machine

import "context"

type MachineService interface {
	Create(ctx context.Context, req CreateMachineRequest) (MachineResponse, error)
	GetByID(ctx context.Context, id string) (MachineResponse, error)
	List(ctx context.Context) ([]MachineResponse, error)
	Update(ctx context.Context, req UpdateMachineRequest) (MachineResponse, error)
	Delete(ctx context.Context, id string) error

	CreateFrame(ctx context.Context, req CreateFrameRequest) (FrameResponse, error)
	// GetFrame returns the target for (machineID, month), carrying the nearest
	// prior month's value forward (and persisting the copy) when the month has
	// no record. When neither exists it returns a zero-valued frame without
	// persisting anything.
	GetFrame(ctx context.Context, machineID, month string) (FrameResponse, error)
	UpdateFrame(ctx context.Context, machineID, month string, frames float64) (FrameResponse, error)
	DeleteFrame(ctx context.Context, machineID, month string) error
}
