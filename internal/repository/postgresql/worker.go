package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/factrack/factrack-backend-go/internal/domain/worker"
	"github.com/factrack/factrack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (id, name, shift, leave_dates)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, shift, leave_dates, created_at, updated_at
	`

	var created worker.Worker
	err := q.QueryRow(ctx, query, uuid.NewString(), w.Name, w.Shift, w.LeaveDates).Scan(
		&created.ID, &created.Name, &created.Shift, &created.LeaveDates, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_worker_name") {
			return worker.Worker{}, worker.ErrWorkerNameExists
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return created, nil
}

func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, shift, leave_dates, created_at, updated_at
		FROM workers
		WHERE id = $1
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.Shift, &w.LeaveDates, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

func (r *workerRepository) List(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, shift, leave_dates, created_at, updated_at
		FROM workers
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	workers := make([]worker.Worker, 0)
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.Shift, &w.LeaveDates, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workers: %w", err)
	}

	return workers, nil
}

func (r *workerRepository) Update(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET name = $2, shift = $3, leave_dates = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, shift, leave_dates, created_at, updated_at
	`

	var updated worker.Worker
	err := q.QueryRow(ctx, query, w.ID, w.Name, w.Shift, w.LeaveDates).Scan(
		&updated.ID, &updated.Name, &updated.Shift, &updated.LeaveDates, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		if strings.Contains(err.Error(), "uk_worker_name") {
			return worker.Worker{}, worker.ErrWorkerNameExists
		}
		return worker.Worker{}, fmt.Errorf("failed to update worker: %w", err)
	}

	return updated, nil
}

func (r *workerRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

func (r *workerRepository) CountReferences(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT (SELECT COUNT(*) FROM worker_productions WHERE worker_id = $1)
			 + (SELECT COUNT(*) FROM work_records WHERE worker_id = $1)
	`

	var count int64
	if err := q.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count worker references: %w", err)
	}

	return count, nil
}
