package check

import (
	"context"

	"github.com/factrack/factrack-backend-go/internal/domain/check"
)

type CheckServiceImpl struct {
	checkRepo check.CheckRepository
}

func NewCheckService(checkRepo check.CheckRepository) check.CheckService {
	return &CheckServiceImpl{checkRepo: checkRepo}
}

func (s *CheckServiceImpl) Get(ctx context.Context) (check.CheckResponse, error) {
	c, err := s.checkRepo.Get(ctx)
	if err != nil {
		return check.CheckResponse{}, err
	}

	return check.CheckResponse{Value: c.Value}, nil
}

func (s *CheckServiceImpl) Set(ctx context.Context, req check.SetCheckRequest) (check.CheckResponse, error) {
	c, err := s.checkRepo.Upsert(ctx, req.Value)
	if err != nil {
		return check.CheckResponse{}, err
	}

	return check.CheckResponse{Value: c.Value}, nil
}
