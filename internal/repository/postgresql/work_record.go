package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/factrack/factrack-backend-go/internal/domain/workrecord"
	"github.com/factrack/factrack-backend-go/internal/pkg/database"
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type workRecordRepository struct {
	db *database.DB
}

func NewWorkRecordRepository(db *database.DB) workrecord.WorkRecordRepository {
	return &workRecordRepository{db: db}
}

func (r *workRecordRepository) Create(ctx context.Context, wr workrecord.WorkRecord) (workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_records (id, worker_id, machine_id, date, work_shift, production, frames, bonus, salary, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, worker_id, machine_id, date, work_shift, production, frames, bonus, salary, total, created_at, updated_at
	`

	var created workrecord.WorkRecord
	err := q.QueryRow(ctx, query,
		uuid.NewString(), wr.WorkerID, wr.MachineID, wr.Date, wr.WorkShift,
		wr.Production, wr.Frames, wr.Bonus, wr.Salary, wr.Total,
	).Scan(
		&created.ID, &created.WorkerID, &created.MachineID, &created.Date, &created.WorkShift,
		&created.Production, &created.Frames, &created.Bonus, &created.Salary, &created.Total,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return workrecord.WorkRecord{}, fmt.Errorf("failed to create work record: %w", err)
	}

	return created, nil
}

func (r *workRecordRepository) GetByID(ctx context.Context, id string) (workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, machine_id, date, work_shift, production, frames, bonus, salary, total, created_at, updated_at
		FROM work_records
		WHERE id = $1
	`

	var wr workrecord.WorkRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&wr.ID, &wr.WorkerID, &wr.MachineID, &wr.Date, &wr.WorkShift,
		&wr.Production, &wr.Frames, &wr.Bonus, &wr.Salary, &wr.Total,
		&wr.CreatedAt, &wr.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return workrecord.WorkRecord{}, workrecord.ErrWorkRecordNotFound
		}
		return workrecord.WorkRecord{}, fmt.Errorf("failed to get work record: %w", err)
	}

	return wr, nil
}

func (r *workRecordRepository) Search(ctx context.Context, filter workrecord.SearchFilter) ([]workrecord.WorkRecordDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT wr.id, wr.worker_id, wr.machine_id, wr.date, wr.work_shift, wr.production, wr.frames,
			   wr.bonus, wr.salary, wr.total, wr.created_at, wr.updated_at, w.name, m.name
		FROM work_records wr
		JOIN workers w ON w.id = wr.worker_id
		JOIN machines m ON m.id = wr.machine_id
	`

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if filter.WorkerID != "" {
		conditions = append(conditions, fmt.Sprintf("wr.worker_id = $%d", len(args)+1))
		args = append(args, filter.WorkerID)
	}
	if filter.MachineID != "" {
		conditions = append(conditions, fmt.Sprintf("wr.machine_id = $%d", len(args)+1))
		args = append(args, filter.MachineID)
	}
	if filter.Month != "" {
		from, to, err := validator.MonthBounds(filter.Month)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, fmt.Sprintf("wr.date >= $%d AND wr.date < $%d", len(args)+1, len(args)+2))
		args = append(args, from, to)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY wr.date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search work records: %w", err)
	}
	defer rows.Close()

	details := make([]workrecord.WorkRecordDetail, 0)
	for rows.Next() {
		var d workrecord.WorkRecordDetail
		err := rows.Scan(
			&d.ID, &d.WorkerID, &d.MachineID, &d.Date, &d.WorkShift, &d.Production, &d.Frames,
			&d.Bonus, &d.Salary, &d.Total, &d.CreatedAt, &d.UpdatedAt, &d.WorkerName, &d.MachineName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work record: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work records: %w", err)
	}

	return details, nil
}

func (r *workRecordRepository) Update(ctx context.Context, wr workrecord.WorkRecord) (workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_records
		SET worker_id = $2, machine_id = $3, date = $4, work_shift = $5, production = $6,
			frames = $7, bonus = $8, salary = $9, total = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING id, worker_id, machine_id, date, work_shift, production, frames, bonus, salary, total, created_at, updated_at
	`

	var updated workrecord.WorkRecord
	err := q.QueryRow(ctx, query,
		wr.ID, wr.WorkerID, wr.MachineID, wr.Date, wr.WorkShift,
		wr.Production, wr.Frames, wr.Bonus, wr.Salary, wr.Total,
	).Scan(
		&updated.ID, &updated.WorkerID, &updated.MachineID, &updated.Date, &updated.WorkShift,
		&updated.Production, &updated.Frames, &updated.Bonus, &updated.Salary, &updated.Total,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return workrecord.WorkRecord{}, workrecord.ErrWorkRecordNotFound
		}
		return workrecord.WorkRecord{}, fmt.Errorf("failed to update work record: %w", err)
	}

	return updated, nil
}

func (r *workRecordRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workrecord.ErrWorkRecordNotFound
	}

	return nil
}

func (r *workRecordRepository) ListMachinesByWorker(ctx context.Context, workerID string) ([]machine.Machine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT m.id, m.name, m.category, m.head, m.created_at, m.updated_at
		FROM machines m
		JOIN work_records wr ON wr.machine_id = m.id
		WHERE wr.worker_id = $1
		ORDER BY m.name ASC
	`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list machines by worker: %w", err)
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
