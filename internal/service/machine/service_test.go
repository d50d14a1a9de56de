package machine

import (
	"context"
	"testing"

	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMachineRepo struct {
	machines map[string]machine.Machine
	refs     map[string]int64
}

func newFakeMachineRepo(machines ...machine.Machine) *fakeMachineRepo {
	repo := &fakeMachineRepo{
		machines: make(map[string]machine.Machine),
		refs:     make(map[string]int64),
	}
	for _, m := range machines {
		repo.machines[m.ID] = m
	}
	return repo
}

func (r *fakeMachineRepo) Create(ctx context.Context, m machine.Machine) (machine.Machine, error) {
	r.machines[m.ID] = m
	return m, nil
}

func (r *fakeMachineRepo) GetByID(ctx context.Context, id string) (machine.Machine, error) {
	m, ok := r.machines[id]
	if !ok {
		return machine.Machine{}, machine.ErrMachineNotFound
	}
	return m, nil
}

func (r *fakeMachineRepo) List(ctx context.Context) ([]machine.Machine, error) {
	out := make([]machine.Machine, 0, len(r.machines))
	for _, m := range r.machines {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMachineRepo) Update(ctx context.Context, m machine.Machine) (machine.Machine, error) {
	if _, ok := r.machines[m.ID]; !ok {
		return machine.Machine{}, machine.ErrMachineNotFound
	}
	r.machines[m.ID] = m
	return m, nil
}

func (r *fakeMachineRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.machines[id]; !ok {
		return machine.ErrMachineNotFound
	}
	delete(r.machines, id)
	return nil
}

func (r *fakeMachineRepo) CountReferences(ctx context.Context, id string) (int64, error) {
	return r.refs[id], nil
}

type fakeFrameRepo struct {
	frames map[string]machine.MachineFrame // keyed machineID|month
}

func newFakeFrameRepo() *fakeFrameRepo {
	return &fakeFrameRepo{frames: make(map[string]machine.MachineFrame)}
}

func frameKey(machineID, month string) string {
	return machineID + "|" + month
}

func (r *fakeFrameRepo) Create(ctx context.Context, f machine.MachineFrame) (machine.MachineFrame, error) {
	key := frameKey(f.MachineID, f.Month)
	if _, ok := r.frames[key]; ok {
		return machine.MachineFrame{}, machine.ErrFrameExists
	}
	f.ID = key
	r.frames[key] = f
	return f, nil
}

func (r *fakeFrameRepo) GetByMachineMonth(ctx context.Context, machineID, month string) (machine.MachineFrame, error) {
	f, ok := r.frames[frameKey(machineID, month)]
	if !ok {
		return machine.MachineFrame{}, machine.ErrFrameNotFound
	}
	return f, nil
}

func (r *fakeFrameRepo) InsertIfAbsent(ctx context.Context, f machine.MachineFrame) error {
	key := frameKey(f.MachineID, f.Month)
	if _, ok := r.frames[key]; ok {
		return nil
	}
	f.ID = key
	r.frames[key] = f
	return nil
}

func (r *fakeFrameRepo) Update(ctx context.Context, machineID, month string, frames float64) (machine.MachineFrame, error) {
	key := frameKey(machineID, month)
	f, ok := r.frames[key]
	if !ok {
		return machine.MachineFrame{}, machine.ErrFrameNotFound
	}
	f.Frames = frames
	r.frames[key] = f
	return f, nil
}

func (r *fakeFrameRepo) Delete(ctx context.Context, machineID, month string) error {
	key := frameKey(machineID, month)
	if _, ok := r.frames[key]; !ok {
		return machine.ErrFrameNotFound
	}
	delete(r.frames, key)
	return nil
}

func topMachine(id string) machine.Machine {
	return machine.Machine{ID: id, Name: "machine-" + id, Category: machine.CategoryTop, Head: 24}
}

func TestGetFrame_ReturnsExistingMonth(t *testing.T) {
	ctx := context.Background()
	machineRepo := newFakeMachineRepo(topMachine("m1"))
	frameRepo := newFakeFrameRepo()
	_, err := frameRepo.Create(ctx, machine.MachineFrame{MachineID: "m1", Month: "2025-03", Frames: 280})
	require.NoError(t, err)

	svc := NewMachineService(machineRepo, frameRepo)

	resp, err := svc.GetFrame(ctx, "m1", "2025-03")
	require.NoError(t, err)
	assert.Equal(t, 280.0, resp.Frames)
	assert.Equal(t, "2025-03", resp.Month)
}

func TestGetFrame_CarriesForwardFromPreviousMonth(t *testing.T) {
	ctx := context.Background()
	machineRepo := newFakeMachineRepo(topMachine("m1"))
	frameRepo := newFakeFrameRepo()
	_, err := frameRepo.Create(ctx, machine.MachineFrame{MachineID: "m1", Month: "2025-02", Frames: 300})
	require.NoError(t, err)

	svc := NewMachineService(machineRepo, frameRepo)

	resp, err := svc.GetFrame(ctx, "m1", "2025-03")
	require.NoError(t, err)
	assert.Equal(t, 300.0, resp.Frames)
	assert.Equal(t, "2025-03", resp.Month)

	// The carried copy is persisted.
	persisted, err := frameRepo.GetByMachineMonth(ctx, "m1", "2025-03")
	require.NoError(t, err)
	assert.Equal(t, 300.0, persisted.Frames)
}

func TestGetFrame_CarryForwardCrossesYearBoundary(t *testing.T) {
	ctx := context.Background()
	machineRepo := newFakeMachineRepo(topMachine("m1"))
	frameRepo := newFakeFrameRepo()
	_, err := frameRepo.Create(ctx, machine.MachineFrame{MachineID: "m1", Month: "2024-12", Frames: 260})
	require.NoError(t, err)

	svc := NewMachineService(machineRepo, frameRepo)

	resp, err := svc.GetFrame(ctx, "m1", "2025-01")
	require.NoError(t, err)
	assert.Equal(t, 260.0, resp.Frames)
}

func TestGetFrame_CarryForwardIsIdempotent(t *testing.T) {
	ctx := context.Background()
	machineRepo := newFakeMachineRepo(topMachine("m1"))
	frameRepo := newFakeFrameRepo()
	_, err := frameRepo.Create(ctx, machine.MachineFrame{MachineID: "m1", Month: "2025-02", Frames: 300})
	require.NoError(t, err)

	svc := NewMachineService(machineRepo, frameRepo)

	first, err := svc.GetFrame(ctx, "m1", "2025-03")
	require.NoError(t, err)

	// Edits to the carried row must survive later reads.
	_, err = svc.UpdateFrame(ctx, "m1", "2025-03", 320)
	require.NoError(t, err)

	second, err := svc.GetFrame(ctx, "m1", "2025-03")
	require.NoError(t, err)
	assert.Equal(t, 300.0, first.Frames)
	assert.Equal(t, 320.0, second.Frames)
}

func TestGetFrame_NothingToCarryReturnsZeroWithoutPersisting(t *testing.T) {
	ctx := context.Background()
	machineRepo := newFakeMachineRepo(topMachine("m1"))
	frameRepo := newFakeFrameRepo()

	svc := NewMachineService(machineRepo, frameRepo)

	resp, err := svc.GetFrame(ctx, "m1", "2025-03")
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Frames)
	assert.Equal(t, "m1", resp.MachineID)
	assert.Equal(t, "2025-03", resp.Month)

	_, err = frameRepo.GetByMachineMonth(ctx, "m1", "2025-03")
	assert.ErrorIs(t, err, machine.ErrFrameNotFound)
}

func TestGetFrame_UnknownMachine(t *testing.T) {
	svc := NewMachineService(newFakeMachineRepo(), newFakeFrameRepo())

	_, err := svc.GetFrame(context.Background(), "missing", "2025-03")
	assert.ErrorIs(t, err, machine.ErrMachineNotFound)
}

func TestCreateFrame_RejectsDuppataMachine(t *testing.T) {
	duppata := machine.Machine{ID: "m2", Name: "d1", Category: machine.CategoryDuppata, Head: 24}
	svc := NewMachineService(newFakeMachineRepo(duppata), newFakeFrameRepo())

	_, err := svc.CreateFrame(context.Background(), machine.CreateFrameRequest{
		MachineID: "m2",
		Month:     "2025-03",
		Frames:    280,
	})
	assert.ErrorIs(t, err, machine.ErrFrameRequiresTop)
}

func TestDeleteMachine_BlockedWhileReferenced(t *testing.T) {
	machineRepo := newFakeMachineRepo(topMachine("m1"))
	machineRepo.refs["m1"] = 3

	svc := NewMachineService(machineRepo, newFakeFrameRepo())

	err := svc.Delete(context.Background(), "m1")
	assert.ErrorIs(t, err, machine.ErrMachineInUse)
}
