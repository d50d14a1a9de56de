package machine

import "errors"

var (
	ErrMachineNotFound      = errors.New("machine not found")
	ErrMachineNameExists    = errors.New("machine name already exists")
	ErrMachineInUse         = errors.New("machine is referenced by production records or frames")
	ErrUnsupportedCategory  = errors.New("unsupported machine category")
	ErrFrameNotFound        = errors.New("machine frame not found")
	ErrFrameExists          = errors.New("machine frame already exists for this month")
	ErrFrameRequiresTop     = errors.New("frames can only be assigned to machines in the 'Top' category")
)
