package salary

import (
	"context"

	"github.com/factrack/factrack-backend-go/internal/domain/fixvalue"
	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/factrack/factrack-backend-go/internal/domain/production"
	"github.com/factrack/factrack-backend-go/internal/domain/salary"
	"github.com/factrack/factrack-backend-go/internal/domain/worker"
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
)

type SalaryServiceImpl struct {
	workerRepo      worker.WorkerRepository
	machineRepo     machine.MachineRepository
	productionRepo  production.WorkerProductionRepository
	machineService  machine.MachineService
	fixValueService fixvalue.FixValueService
}

func NewSalaryService(
	workerRepo worker.WorkerRepository,
	machineRepo machine.MachineRepository,
	productionRepo production.WorkerProductionRepository,
	machineService machine.MachineService,
	fixValueService fixvalue.FixValueService,
) salary.SalaryService {
	return &SalaryServiceImpl{
		workerRepo:      workerRepo,
		machineRepo:     machineRepo,
		productionRepo:  productionRepo,
		machineService:  machineService,
		fixValueService: fixValueService,
	}
}

func (s *SalaryServiceImpl) ComputeMonthly(ctx context.Context, workerID, machineID, month string) (salary.MonthlySalaryResponse, error) {
	if !validator.IsValidMonth(month) {
		return salary.MonthlySalaryResponse{}, validator.ValidationErrors{{Field: "month", Message: "must be in YYYY-MM format"}}
	}

	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return salary.MonthlySalaryResponse{}, err
	}
	m, err := s.machineRepo.GetByID(ctx, machineID)
	if err != nil {
		return salary.MonthlySalaryResponse{}, err
	}

	// A month with no records still renders: empty days, zero totals.
	records, err := s.productionRepo.ListByWorkerMachineMonth(ctx, workerID, machineID, month)
	if err != nil {
		return salary.MonthlySalaryResponse{}, err
	}

	// The same carry-forward readers back the dedicated endpoints, so the
	// sheet always agrees with what those endpoints report.
	fv, err := s.fixValueService.Get(ctx, m.Category, month)
	if err != nil {
		return salary.MonthlySalaryResponse{}, err
	}

	resp := salary.MonthlySalaryResponse{
		Category:          string(m.Category),
		WorkerName:        w.Name,
		MachineName:       m.Name,
		Month:             month,
		FixSalCountPerDay: fv.FixSalCount.Round(2),
	}

	switch m.Category {
	case machine.CategoryTop:
		frame, err := s.machineService.GetFrame(ctx, machineID, month)
		if err != nil {
			return salary.MonthlySalaryResponse{}, err
		}
		resp.TargetFrames = &frame.Frames
		resp.Days, resp.Totals = computeTopDays(records, frame.Frames, fv.FixSalCount)
	case machine.CategoryDuppata:
		resp.Days, resp.Totals = computeDuppataDays(records, fv.FixSalCount)
	default:
		return salary.MonthlySalaryResponse{}, machine.ErrUnsupportedCategory
	}

	return resp, nil
}
