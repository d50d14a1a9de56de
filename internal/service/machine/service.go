package machine

import (
	"context"
	"errors"

	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
)

type MachineServiceImpl struct {
	machineRepo machine.MachineRepository
	frameRepo   machine.FrameRepository
}

func NewMachineService(machineRepo machine.MachineRepository, frameRepo machine.FrameRepository) machine.MachineService {
	return &MachineServiceImpl{
		machineRepo: machineRepo,
		frameRepo:   frameRepo,
	}
}

func (s *MachineServiceImpl) Create(ctx context.Context, req machine.CreateMachineRequest) (machine.MachineResponse, error) {
	if err := req.Validate(); err != nil {
		return machine.MachineResponse{}, err
	}

	created, err := s.machineRepo.Create(ctx, machine.Machine{
		Name:     req.Name,
		Category: machine.Category(req.Category),
		Head:     req.Head,
	})
	if err != nil {
		return machine.MachineResponse{}, err
	}

	return machine.NewMachineResponse(created), nil
}

func (s *MachineServiceImpl) GetByID(ctx context.Context, id string) (machine.MachineResponse, error) {
	m, err := s.machineRepo.GetByID(ctx, id)
	if err != nil {
		return machine.MachineResponse{}, err
	}

	return machine.NewMachineResponse(m), nil
}

func (s *MachineServiceImpl) List(ctx context.Context) ([]machine.MachineResponse, error) {
	machines, err := s.machineRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]machine.MachineResponse, 0, len(machines))
	for _, m := range machines {
		responses = append(responses, machine.NewMachineResponse(m))
	}

	return responses, nil
}

func (s *MachineServiceImpl) Update(ctx context.Context, req machine.UpdateMachineRequest) (machine.MachineResponse, error) {
	if err := req.Validate(); err != nil {
		return machine.MachineResponse{}, err
	}

	m, err := s.machineRepo.GetByID(ctx, req.ID)
	if err != nil {
		return machine.MachineResponse{}, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Category != nil {
		m.Category = machine.Category(*req.Category)
	}
	if req.Head != nil {
		m.Head = *req.Head
	}

	updated, err := s.machineRepo.Update(ctx, m)
	if err != nil {
		return machine.MachineResponse{}, err
	}

	return machine.NewMachineResponse(updated), nil
}

func (s *MachineServiceImpl) Delete(ctx context.Context, id string) error {
	count, err := s.machineRepo.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return machine.ErrMachineInUse
	}

	return s.machineRepo.Delete(ctx, id)
}

func (s *MachineServiceImpl) CreateFrame(ctx context.Context, req machine.CreateFrameRequest) (machine.FrameResponse, error) {
	if err := req.Validate(); err != nil {
		return machine.FrameResponse{}, err
	}

	m, err := s.machineRepo.GetByID(ctx, req.MachineID)
	if err != nil {
		return machine.FrameResponse{}, err
	}
	if m.Category != machine.CategoryTop {
		return machine.FrameResponse{}, machine.ErrFrameRequiresTop
	}

	created, err := s.frameRepo.Create(ctx, machine.MachineFrame{
		MachineID: req.MachineID,
		Month:     req.Month,
		Frames:    req.Frames,
	})
	if err != nil {
		return machine.FrameResponse{}, err
	}

	return machine.NewFrameResponse(created), nil
}

func (s *MachineServiceImpl) GetFrame(ctx context.Context, machineID, month string) (machine.FrameResponse, error) {
	if !validator.IsValidMonth(month) {
		return machine.FrameResponse{}, validator.ValidationErrors{{Field: "month", Message: "must be in YYYY-MM format"}}
	}

	if _, err := s.machineRepo.GetByID(ctx, machineID); err != nil {
		return machine.FrameResponse{}, err
	}

	f, err := s.frameRepo.GetByMachineMonth(ctx, machineID, month)
	if err == nil {
		return machine.NewFrameResponse(f), nil
	}
	if !errors.Is(err, machine.ErrFrameNotFound) {
		return machine.FrameResponse{}, err
	}

	prevMonth, err := validator.PreviousMonth(month)
	if err != nil {
		return machine.FrameResponse{}, err
	}

	prev, err := s.frameRepo.GetByMachineMonth(ctx, machineID, prevMonth)
	if err != nil {
		if errors.Is(err, machine.ErrFrameNotFound) {
			// Nothing to carry forward. Report a zero target without
			// persisting it.
			return machine.FrameResponse{MachineID: machineID, Month: month}, nil
		}
		return machine.FrameResponse{}, err
	}

	err = s.frameRepo.InsertIfAbsent(ctx, machine.MachineFrame{
		MachineID: machineID,
		Month:     month,
		Frames:    prev.Frames,
	})
	if err != nil {
		return machine.FrameResponse{}, err
	}

	// Re-read so a concurrent writer's row wins over our copy.
	f, err = s.frameRepo.GetByMachineMonth(ctx, machineID, month)
	if err != nil {
		return machine.FrameResponse{}, err
	}

	return machine.NewFrameResponse(f), nil
}

func (s *MachineServiceImpl) UpdateFrame(ctx context.Context, machineID, month string, frames float64) (machine.FrameResponse, error) {
	if !validator.IsValidMonth(month) {
		return machine.FrameResponse{}, validator.ValidationErrors{{Field: "month", Message: "must be in YYYY-MM format"}}
	}
	if frames <= 0 {
		return machine.FrameResponse{}, validator.ValidationErrors{{Field: "frames", Message: "must be positive"}}
	}

	updated, err := s.frameRepo.Update(ctx, machineID, month, frames)
	if err != nil {
		return machine.FrameResponse{}, err
	}

	return machine.NewFrameResponse(updated), nil
}

func (s *MachineServiceImpl) DeleteFrame(ctx context.Context, machineID, month string) error {
	if !validator.IsValidMonth(month) {
		return validator.ValidationErrors{{Field: "month", Message: "must be in YYYY-MM format"}}
	}

	return s.frameRepo.Delete(ctx, machineID, month)
}
