package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/factrack/factrack-backend-go/internal/domain/production"
	"github.com/factrack/factrack-backend-go/internal/pkg/database"
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type workerProductionRepository struct {
	db *database.DB
}

func NewWorkerProductionRepository(db *database.DB) production.WorkerProductionRepository {
	return &workerProductionRepository{db: db}
}

func marshalFramePairs(pairs []production.FramePair) (any, error) {
	if pairs == nil {
		return nil, nil
	}
	b, err := json.Marshal(pairs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frame pairs: %w", err)
	}
	return b, nil
}

func unmarshalFramePairs(raw []byte) ([]production.FramePair, error) {
	if raw == nil {
		return nil, nil
	}
	var pairs []production.FramePair
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal frame pairs: %w", err)
	}
	return pairs, nil
}

func (r *workerProductionRepository) Create(ctx context.Context, wp production.WorkerProduction) (production.WorkerProduction, error) {
	q := GetQuerier(ctx, r.db)

	frames, err := marshalFramePairs(wp.Frames)
	if err != nil {
		return production.WorkerProduction{}, err
	}

	query := `
		INSERT INTO worker_productions (id, worker_id, machine_id, date, category, production, frames)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, worker_id, machine_id, date, category, production, frames, created_at, updated_at
	`

	created, err := scanWorkerProduction(q.QueryRow(ctx, query,
		uuid.NewString(), wp.WorkerID, wp.MachineID, wp.Date, wp.Category, wp.Production, frames,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_worker_production_day") {
			return production.WorkerProduction{}, production.ErrProductionExists
		}
		return production.WorkerProduction{}, fmt.Errorf("failed to create production record: %w", err)
	}

	return created, nil
}

func scanWorkerProduction(row pgx.Row) (production.WorkerProduction, error) {
	var (
		wp  production.WorkerProduction
		raw []byte
	)
	err := row.Scan(
		&wp.ID, &wp.WorkerID, &wp.MachineID, &wp.Date, &wp.Category, &wp.Production, &raw,
		&wp.CreatedAt, &wp.UpdatedAt,
	)
	if err != nil {
		return production.WorkerProduction{}, err
	}
	wp.Frames, err = unmarshalFramePairs(raw)
	if err != nil {
		return production.WorkerProduction{}, err
	}
	return wp, nil
}

func (r *workerProductionRepository) GetByID(ctx context.Context, id string) (production.WorkerProduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, machine_id, date, category, production, frames, created_at, updated_at
		FROM worker_productions
		WHERE id = $1
	`

	wp, err := scanWorkerProduction(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return production.WorkerProduction{}, production.ErrProductionNotFound
		}
		return production.WorkerProduction{}, fmt.Errorf("failed to get production record: %w", err)
	}

	return wp, nil
}

func (r *workerProductionRepository) List(ctx context.Context, filter production.ListFilter) ([]production.WorkerProductionDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT wp.id, wp.worker_id, wp.machine_id, wp.date, wp.category, wp.production, wp.frames,
			   wp.created_at, wp.updated_at, w.name, m.name
		FROM worker_productions wp
		JOIN workers w ON w.id = wp.worker_id
		JOIN machines m ON m.id = wp.machine_id
	`

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if filter.MonthYear != "" {
		from, to, err := validator.MonthBounds(filter.MonthYear)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, fmt.Sprintf("wp.date >= $%d AND wp.date < $%d", len(args)+1, len(args)+2))
		args = append(args, from, to)
	}
	if filter.WorkerID != "" {
		conditions = append(conditions, fmt.Sprintf("wp.worker_id = $%d", len(args)+1))
		args = append(args, filter.WorkerID)
	}
	if filter.MachineID != "" {
		conditions = append(conditions, fmt.Sprintf("wp.machine_id = $%d", len(args)+1))
		args = append(args, filter.MachineID)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY wp.date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list production records: %w", err)
	}
	defer rows.Close()

	details := make([]production.WorkerProductionDetail, 0)
	for rows.Next() {
		var (
			d   production.WorkerProductionDetail
			raw []byte
		)
		err := rows.Scan(
			&d.ID, &d.WorkerID, &d.MachineID, &d.Date, &d.Category, &d.Production, &raw,
			&d.CreatedAt, &d.UpdatedAt, &d.WorkerName, &d.MachineName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan production record: %w", err)
		}
		if d.Frames, err = unmarshalFramePairs(raw); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate production records: %w", err)
	}

	return details, nil
}

func (r *workerProductionRepository) ListByWorkerMachineMonth(ctx context.Context, workerID, machineID, month string) ([]production.WorkerProduction, error) {
	q := GetQuerier(ctx, r.db)

	from, to, err := validator.MonthBounds(month)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, worker_id, machine_id, date, category, production, frames, created_at, updated_at
		FROM worker_productions
		WHERE worker_id = $1 AND machine_id = $2 AND date >= $3 AND date < $4
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, workerID, machineID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list production records for month: %w", err)
	}
	defer rows.Close()

	records := make([]production.WorkerProduction, 0)
	for rows.Next() {
		var (
			wp  production.WorkerProduction
			raw []byte
		)
		err := rows.Scan(
			&wp.ID, &wp.WorkerID, &wp.MachineID, &wp.Date, &wp.Category, &wp.Production, &raw,
			&wp.CreatedAt, &wp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan production record: %w", err)
		}
		if wp.Frames, err = unmarshalFramePairs(raw); err != nil {
			return nil, err
		}
		records = append(records, wp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate production records: %w", err)
	}

	return records, nil
}

func (r *workerProductionRepository) Update(ctx context.Context, wp production.WorkerProduction) (production.WorkerProduction, error) {
	q := GetQuerier(ctx, r.db)

	frames, err := marshalFramePairs(wp.Frames)
	if err != nil {
		return production.WorkerProduction{}, err
	}

	query := `
		UPDATE worker_productions
		SET worker_id = $2, machine_id = $3, date = $4, category = $5, production = $6, frames = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING id, worker_id, machine_id, date, category, production, frames, created_at, updated_at
	`

	updated, err := scanWorkerProduction(q.QueryRow(ctx, query,
		wp.ID, wp.WorkerID, wp.MachineID, wp.Date, wp.Category, wp.Production, frames,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return production.WorkerProduction{}, production.ErrProductionNotFound
		}
		if strings.Contains(err.Error(), "uk_worker_production_day") {
			return production.WorkerProduction{}, production.ErrProductionExists
		}
		return production.WorkerProduction{}, fmt.Errorf("failed to update production record: %w", err)
	}

	return updated, nil
}

func (r *workerProductionRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM worker_productions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete production record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return production.ErrProductionNotFound
	}

	return nil
}

func (r *workerProductionRepository) CountByWorker(ctx context.Context, workerID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM worker_productions WHERE worker_id = $1`, workerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count production records by worker: %w", err)
	}

	return count, nil
}

func (r *workerProductionRepository) CountByMachine(ctx context.Context, machineID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM worker_productions WHERE machine_id = $1`, machineID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count production records by machine: %w", err)
	}

	return count, nil
}
