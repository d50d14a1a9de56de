package production

import (
	"context"

	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/factrack/factrack-backend-go/internal/domain/production"
	"github.com/factrack/factrack-backend-go/internal/domain/worker"
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
)

type ProductionServiceImpl struct {
	productionRepo production.WorkerProductionRepository
	workerRepo     worker.WorkerRepository
	machineRepo    machine.MachineRepository
}

func NewProductionService(
	productionRepo production.WorkerProductionRepository,
	workerRepo worker.WorkerRepository,
	machineRepo machine.MachineRepository,
) production.ProductionService {
	return &ProductionServiceImpl{
		productionRepo: productionRepo,
		workerRepo:     workerRepo,
		machineRepo:    machineRepo,
	}
}

// checkShape enforces the category-specific payload: Top records carry a
// production figure and no frame pairs, Duppata records carry one to three
// frame pairs and no production figure.
func checkShape(category machine.Category, prod *float64, frames []production.FramePair) error {
	switch category {
	case machine.CategoryTop:
		if prod == nil {
			return validator.ValidationErrors{{Field: "production", Message: "is required for Top machines"}}
		}
		if len(frames) > 0 {
			return validator.ValidationErrors{{Field: "frames", Message: "are not allowed for Top machines"}}
		}
	case machine.CategoryDuppata:
		if len(frames) < 1 || len(frames) > 3 {
			return validator.ValidationErrors{{Field: "frames", Message: "must contain 1 to 3 pairs for Duppata machines"}}
		}
		if prod != nil {
			return validator.ValidationErrors{{Field: "production", Message: "is not allowed for Duppata machines"}}
		}
	default:
		return machine.ErrUnsupportedCategory
	}
	return nil
}

func (s *ProductionServiceImpl) Create(ctx context.Context, req production.CreateProductionRequest) (production.ProductionResponse, error) {
	if err := req.Validate(); err != nil {
		return production.ProductionResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return production.ProductionResponse{}, err
	}
	m, err := s.machineRepo.GetByID(ctx, req.MachineID)
	if err != nil {
		return production.ProductionResponse{}, err
	}

	if err := checkShape(m.Category, req.Production, req.Frames); err != nil {
		return production.ProductionResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	created, err := s.productionRepo.Create(ctx, production.WorkerProduction{
		WorkerID:   req.WorkerID,
		MachineID:  req.MachineID,
		Date:       date,
		Category:   m.Category,
		Production: req.Production,
		Frames:     req.Frames,
	})
	if err != nil {
		return production.ProductionResponse{}, err
	}

	return production.NewProductionResponse(created), nil
}

func (s *ProductionServiceImpl) List(ctx context.Context, filter production.ListFilter) ([]production.ProductionResponse, error) {
	if filter.MonthYear != "" && !validator.IsValidMonth(filter.MonthYear) {
		return nil, validator.ValidationErrors{{Field: "monthYear", Message: "must be in YYYY-MM format"}}
	}

	details, err := s.productionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]production.ProductionResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, production.NewProductionDetailResponse(d))
	}

	return responses, nil
}

func (s *ProductionServiceImpl) Update(ctx context.Context, req production.UpdateProductionRequest) (production.ProductionResponse, error) {
	if err := req.Validate(); err != nil {
		return production.ProductionResponse{}, err
	}

	wp, err := s.productionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return production.ProductionResponse{}, err
	}

	if req.WorkerID != nil {
		if _, err := s.workerRepo.GetByID(ctx, *req.WorkerID); err != nil {
			return production.ProductionResponse{}, err
		}
		wp.WorkerID = *req.WorkerID
	}
	if req.MachineID != nil && *req.MachineID != wp.MachineID {
		// The category follows the machine, so a machine change re-derives it.
		m, err := s.machineRepo.GetByID(ctx, *req.MachineID)
		if err != nil {
			return production.ProductionResponse{}, err
		}
		wp.MachineID = m.ID
		wp.Category = m.Category
	}
	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		wp.Date = date
	}
	if req.Production != nil {
		wp.Production = req.Production
		wp.Frames = nil
	}
	if req.Frames != nil {
		wp.Frames = req.Frames
		wp.Production = nil
	}

	if err := checkShape(wp.Category, wp.Production, wp.Frames); err != nil {
		return production.ProductionResponse{}, err
	}

	updated, err := s.productionRepo.Update(ctx, wp)
	if err != nil {
		return production.ProductionResponse{}, err
	}

	return production.NewProductionResponse(updated), nil
}

func (s *ProductionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.productionRepo.Delete(ctx, id)
}
