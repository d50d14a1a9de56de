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

type machineRepository struct {
	db *database.DB
}

func NewMachineRepository(db *database.DB) machine.MachineRepository {
	return &machineRepository{db: db}
}

func (r *machineRepository) Create(ctx context.Context, m machine.Machine) (machine.Machine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO machines (id, name, category, head)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, category, head, created_at, updated_at
	`

	var created machine.Machine
	err := q.QueryRow(ctx, query, uuid.NewString(), m.Name, m.Category, m.Head).Scan(
		&created.ID, &created.Name, &created.Category, &created.Head, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_machine_name") {
			return machine.Machine{}, machine.ErrMachineNameExists
		}
		return machine.Machine{}, fmt.Errorf("failed to create machine: %w", err)
	}

	return created, nil
}

func (r *machineRepository) GetByID(ctx context.Context, id string) (machine.Machine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, category, head, created_at, updated_at
		FROM machines
		WHERE id = $1
	`

	var m machine.Machine
	err := q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Category, &m.Head, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return machine.Machine{}, machine.ErrMachineNotFound
		}
		return machine.Machine{}, fmt.Errorf("failed to get machine: %w", err)
	}

	return m, nil
}

func (r *machineRepository) List(ctx context.Context) ([]machine.Machine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, category, head, created_at, updated_at
		FROM machines
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list machines: %w", err)
	}
	defer rows.Close()

	machines := make([]machine.Machine, 0)
	for rows.Next() {
		var m machine.Machine
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Head, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan machine: %w", err)
		}
		machines = append(machines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate machines: %w", err)
	}

	return machines, nil
}

func (r *machineRepository) Update(ctx context.Context, m machine.Machine) (machine.Machine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE machines
		SET name = $2, category = $3, head = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, category, head, created_at, updated_at
	`

	var updated machine.Machine
	err := q.QueryRow(ctx, query, m.ID, m.Name, m.Category, m.Head).Scan(
		&updated.ID, &updated.Name, &updated.Category, &updated.Head, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return machine.Machine{}, machine.ErrMachineNotFound
		}
		if strings.Contains(err.Error(), "uk_machine_name") {
			return machine.Machine{}, machine.ErrMachineNameExists
		}
		return machine.Machine{}, fmt.Errorf("failed to update machine: %w", err)
	}

	return updated, nil
}

func (r *machineRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM machines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete machine: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return machine.ErrMachineNotFound
	}

	return nil
}

func (r *machineRepository) CountReferences(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT (SELECT COUNT(*) FROM worker_productions WHERE machine_id = $1)
			 + (SELECT COUNT(*) FROM work_records WHERE machine_id = $1)
			 + (SELECT COUNT(*) FROM machine_frames WHERE machine_id = $1)
	`

	var count int64
	if err := q.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count machine references: %w", err)
	}

	return count, nil
}
