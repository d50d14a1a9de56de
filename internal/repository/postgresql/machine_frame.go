package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/factrack/factrack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type frameRepository struct {
	db *database.DB
}

func NewFrameRepository(db *database.DB) machine.FrameRepository {
	return &frameRepository{db: db}
}

func (r *frameRepository) Create(ctx context.Context, f machine.MachineFrame) (machine.MachineFrame, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO machine_frames (id, machine_id, month, frames)
		VALUES ($1, $2, $3, $4)
		RETURNING id, machine_id, month, frames, created_at, updated_at
	`

	var created machine.MachineFrame
	err := q.QueryRow(ctx, query, uuid.NewString(), f.MachineID, f.Month, f.Frames).Scan(
		&created.ID, &created.MachineID, &created.Month, &created.Frames, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_machine_frame_month") {
			return machine.MachineFrame{}, machine.ErrFrameExists
		}
		return machine.MachineFrame{}, fmt.Errorf("failed to create machine frame: %w", err)
	}

	return created, nil
}

func (r *frameRepository) GetByMachineMonth(ctx context.Context, machineID, month string) (machine.MachineFrame, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, machine_id, month, frames, created_at, updated_at
		FROM machine_frames
		WHERE machine_id = $1 AND month = $2
	`

	var f machine.MachineFrame
	err := q.QueryRow(ctx, query, machineID, month).Scan(
		&f.ID, &f.MachineID, &f.Month, &f.Frames, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return machine.MachineFrame{}, machine.ErrFrameNotFound
		}
		return machine.MachineFrame{}, fmt.Errorf("failed to get machine frame: %w", err)
	}

	return f, nil
}

// InsertIfAbsent relies on the unique index so concurrent carry-forwards of
// the same month collapse to a single row.
func (r *frameRepository) InsertIfAbsent(ctx context.Context, f machine.MachineFrame) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO machine_frames (id, machine_id, month, frames)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (machine_id, month) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, uuid.NewString(), f.MachineID, f.Month, f.Frames); err != nil {
		return fmt.Errorf("failed to insert machine frame: %w", err)
	}

	return nil
}

func (r *frameRepository) Update(ctx context.Context, machineID, month string, frames float64) (machine.MachineFrame, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE machine_frames
		SET frames = $3, updated_at = NOW()
		WHERE machine_id = $1 AND month = $2
		RETURNING id, machine_id, month, frames, created_at, updated_at
	`

	var updated machine.MachineFrame
	err := q.QueryRow(ctx, query, machineID, month, frames).Scan(
		&updated.ID, &updated.MachineID, &updated.Month, &updated.Frames, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return machine.MachineFrame{}, machine.ErrFrameNotFound
		}
		return machine.MachineFrame{}, fmt.Errorf("failed to update machine frame: %w", err)
	}

	return updated, nil
}

func (r *frameRepository) Delete(ctx context.Context, machineID, month string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM machine_frames WHERE machine_id = $1 AND month = $2`, machineID, month)
	if err != nil {
		return fmt.Errorf("failed to delete machine frame: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return machine.ErrFrameNotFound
	}

	return nil
}
