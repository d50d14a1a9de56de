package worker

import "errors"

var (
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrWorkerNameExists = errors.New("worker name already exists")
	ErrWorkerInUse      = errors.New("worker is referenced by production records")
)
