package worker

import (
	"context"

	"github.com/factrack/factrack-backend-go/internal/domain/worker"
)

type WorkerServiceImpl struct {
	workerRepo worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{workerRepo: workerRepo}
}

func (s *WorkerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	created, err := s.workerRepo.Create(ctx, worker.Worker{
		Name:       req.Name,
		Shift:      worker.Shift(req.Shift),
		LeaveDates: worker.ParseLeaveDates(req.LeaveDates),
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.NewWorkerResponse(created), nil
}

func (s *WorkerServiceImpl) GetByID(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.NewWorkerResponse(w), nil
}

func (s *WorkerServiceImpl) List(ctx context.Context) ([]worker.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.NewWorkerResponse(w))
	}

	return responses, nil
}

func (s *WorkerServiceImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.Shift != nil {
		w.Shift = worker.Shift(*req.Shift)
	}
	if req.LeaveDates != nil {
		w.LeaveDates = worker.ParseLeaveDates(*req.LeaveDates)
	}

	updated, err := s.workerRepo.Update(ctx, w)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.NewWorkerResponse(updated), nil
}

func (s *WorkerServiceImpl) Delete(ctx context.Context, id string) error {
	count, err := s.workerRepo.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return worker.ErrWorkerInUse
	}

	return s.workerRepo.Delete(ctx, id)
}
