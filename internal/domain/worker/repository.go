package worker

import "context"

type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	List(ctx context.Context) ([]Worker, error)
	Update(ctx context.Context, w Worker) (Worker, error)
	Delete(ctx context.Context, id string) error
	// CountReferences reports how many production or work records reference the worker.
	CountReferences(ctx context.Context, id string) (int64, error)
}
