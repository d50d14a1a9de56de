package fixvalue

import (
	"context"
	"errors"

	"github.com/factrack/factrack-backend-go/internal/domain/fixvalue"
	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
)

type FixValueServiceImpl struct {
	fixValueRepo fixvalue.FixValueRepository
}

func NewFixValueService(fixValueRepo fixvalue.FixValueRepository) fixvalue.FixValueService {
	return &FixValueServiceImpl{fixValueRepo: fixValueRepo}
}

func (s *FixValueServiceImpl) Create(ctx context.Context, req fixvalue.CreateFixValueRequest) (fixvalue.FixValueResponse, error) {
	if err := req.Validate(); err != nil {
		return fixvalue.FixValueResponse{}, err
	}

	created, err := s.fixValueRepo.Create(ctx, fixvalue.FixValue{
		Category:    machine.Category(req.Category),
		Month:       req.Month,
		FixSalCount: req.FixSalCount,
	})
	if err != nil {
		return fixvalue.FixValueResponse{}, err
	}

	return fixvalue.NewFixValueResponse(created), nil
}

func (s *FixValueServiceImpl) Get(ctx context.Context, category machine.Category, month string) (fixvalue.FixValueResponse, error) {
	if !category.Valid() {
		return fixvalue.FixValueResponse{}, machine.ErrUnsupportedCategory
	}
	if !validator.IsValidMonth(month) {
		return fixvalue.FixValueResponse{}, validator.ValidationErrors{{Field: "month", Message: "must be in YYYY-MM format"}}
	}

	fv, err := s.fixValueRepo.GetByCategoryMonth(ctx, category, month)
	if err == nil {
		return fixvalue.NewFixValueResponse(fv), nil
	}
	if !errors.Is(err, fixvalue.ErrFixValueNotFound) {
		return fixvalue.FixValueResponse{}, err
	}

	prevMonth, err := validator.PreviousMonth(month)
	if err != nil {
		return fixvalue.FixValueResponse{}, err
	}

	prev, err := s.fixValueRepo.GetByCategoryMonth(ctx, category, prevMonth)
	if err != nil {
		if errors.Is(err, fixvalue.ErrFixValueNotFound) {
			// Nothing to carry forward. Report a zero value without
			// persisting it.
			return fixvalue.FixValueResponse{Category: string(category), Month: month}, nil
		}
		return fixvalue.FixValueResponse{}, err
	}

	err = s.fixValueRepo.InsertIfAbsent(ctx, fixvalue.FixValue{
		Category:    category,
		Month:       month,
		FixSalCount: prev.FixSalCount,
	})
	if err != nil {
		return fixvalue.FixValueResponse{}, err
	}

	// Re-read so a concurrent writer's row wins over our copy.
	fv, err = s.fixValueRepo.GetByCategoryMonth(ctx, category, month)
	if err != nil {
		return fixvalue.FixValueResponse{}, err
	}

	return fixvalue.NewFixValueResponse(fv), nil
}

func (s *FixValueServiceImpl) Update(ctx context.Context, req fixvalue.UpdateFixValueRequest) (fixvalue.FixValueResponse, error) {
	if err := req.Validate(); err != nil {
		return fixvalue.FixValueResponse{}, err
	}
	if !machine.Category(req.Category).Valid() {
		return fixvalue.FixValueResponse{}, machine.ErrUnsupportedCategory
	}
	if !validator.IsValidMonth(req.Month) {
		return fixvalue.FixValueResponse{}, validator.ValidationErrors{{Field: "month", Message: "must be in YYYY-MM format"}}
	}

	updated, err := s.fixValueRepo.Update(ctx, machine.Category(req.Category), req.Month, req.FixSalCount)
	if err != nil {
		return fixvalue.FixValueResponse{}, err
	}

	return fixvalue.NewFixValueResponse(updated), nil
}

func (s *FixValueServiceImpl) Delete(ctx context.Context, category machine.Category, month string) error {
	if !category.Valid() {
		return machine.ErrUnsupportedCategory
	}
	if !validator.IsValidMonth(month) {
		return validator.ValidationErrors{{Field: "month", Message: "must be in YYYY-MM format"}}
	}

	return s.fixValueRepo.Delete(ctx, category, month)
}
