package production

import "errors"

var (
	ErrProductionNotFound = errors.New("production record not found")
	ErrProductionExists   = errors.New("production record already exists for this worker, machine and date")
)
