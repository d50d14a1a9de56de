package workrecord

import (
	"context"
	"math"

	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/factrack/factrack-backend-go/internal/domain/worker"
	"github.com/factrack/factrack-backend-go/internal/domain/workrecord"
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type WorkRecordServiceImpl struct {
	workRecordRepo workrecord.WorkRecordRepository
	workerRepo     worker.WorkerRepository
	machineRepo    machine.MachineRepository
}

func NewWorkRecordService(
	workRecordRepo workrecord.WorkRecordRepository,
	workerRepo worker.WorkerRepository,
	machineRepo machine.MachineRepository,
) workrecord.WorkRecordService {
	return &WorkRecordServiceImpl{
		workRecordRepo: workRecordRepo,
		workerRepo:     workerRepo,
		machineRepo:    machineRepo,
	}
}

// derive computes the stored figures from the raw production count and the
// machine it was produced on. Top machines get a fixed frame count by head
// size; the bonus threshold also follows the head size.
func derive(m machine.Machine, prod float64) (frames float64, bonus, sal, total decimal.Decimal) {
	switch {
	case m.Category == machine.CategoryTop && m.Head < 26:
		frames = 300
	case m.Category == machine.CategoryTop && m.Head >= 27:
		frames = 280
	default:
		frames = prod
	}

	threshold := 280.0
	if m.Head > 27 {
		threshold = 300
	}

	if prod >= threshold {
		bonus = decimal.NewFromInt(100)
		sal = decimal.NewFromInt(400)
	} else {
		bonus = decimal.Zero
		sal = decimal.NewFromFloat(math.Round(prod * 1.5))
	}

	total = decimal.NewFromFloat(math.Round(prod*0.6 + frames*0.4))
	return frames, bonus, sal, total
}

func (s *WorkRecordServiceImpl) Create(ctx context.Context, req workrecord.CreateWorkRecordRequest) (workrecord.WorkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return workrecord.WorkRecordResponse{}, err
	}
	m, err := s.machineRepo.GetByID(ctx, req.MachineID)
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	frames, bonus, sal, total := derive(m, req.Production)
	date, _ := validator.IsValidDate(req.Date)

	created, err := s.workRecordRepo.Create(ctx, workrecord.WorkRecord{
		WorkerID:   req.WorkerID,
		MachineID:  req.MachineID,
		Date:       date,
		WorkShift:  workrecord.Shift(req.WorkShift),
		Production: req.Production,
		Frames:     frames,
		Bonus:      bonus,
		Salary:     sal,
		Total:      total,
	})
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	return workrecord.NewWorkRecordResponse(created), nil
}

func (s *WorkRecordServiceImpl) Search(ctx context.Context, filter workrecord.SearchFilter) ([]workrecord.WorkRecordResponse, error) {
	if filter.Month != "" && !validator.IsValidMonth(filter.Month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "must be in YYYY-MM format"}}
	}

	details, err := s.workRecordRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, workrecord.ErrNoWorkRecords
	}

	responses := make([]workrecord.WorkRecordResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, workrecord.NewWorkRecordDetailResponse(d))
	}

	return responses, nil
}

func (s *WorkRecordServiceImpl) Update(ctx context.Context, req workrecord.UpdateWorkRecordRequest) (workrecord.WorkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	wr, err := s.workRecordRepo.GetByID(ctx, req.ID)
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	if req.WorkerID != nil {
		if _, err := s.workerRepo.GetByID(ctx, *req.WorkerID); err != nil {
			return workrecord.WorkRecordResponse{}, err
		}
		wr.WorkerID = *req.WorkerID
	}
	if req.MachineID != nil {
		wr.MachineID = *req.MachineID
	}
	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		wr.Date = date
	}
	if req.WorkShift != nil {
		wr.WorkShift = workrecord.Shift(*req.WorkShift)
	}
	if req.Production != nil {
		wr.Production = *req.Production
	}

	// Derived figures always follow the final machine and production.
	m, err := s.machineRepo.GetByID(ctx, wr.MachineID)
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}
	wr.Frames, wr.Bonus, wr.Salary, wr.Total = derive(m, wr.Production)

	updated, err := s.workRecordRepo.Update(ctx, wr)
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	return workrecord.NewWorkRecordResponse(updated), nil
}

func (s *WorkRecordServiceImpl) Delete(ctx context.Context, id string) error {
	return s.workRecordRepo.Delete(ctx, id)
}

func (s *WorkRecordServiceImpl) RefMachines(ctx context.Context, workerID string) ([]machine.MachineResponse, error) {
	if _, err := s.workerRepo.GetByID(ctx, workerID); err != nil {
		return nil, err
	}

	machines, err := s.workRecordRepo.ListMachinesByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	responses := make([]machine.MachineResponse, 0, len(machines))
	for _, m := range machines {
		responses = append(responses, machine.NewMachineResponse(m))
	}

	return responses, nil
}
