package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/factrack/factrack-backend-go/internal/domain/challan"
	"github.com/factrack/factrack-backend-go/internal/pkg/database"
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type threadChallanRepository struct {
	db *database.DB
}

func NewThreadChallanRepository(db *database.DB) challan.ThreadChallanRepository {
	return &threadChallanRepository{db: db}
}

func (r *threadChallanRepository) Create(ctx context.Context, tc challan.ThreadChallan) (challan.ThreadChallan, error) {
	q := GetQuerier(ctx, r.db)

	entries, err := json.Marshal(tc.Entries)
	if err != nil {
		return challan.ThreadChallan{}, fmt.Errorf("failed to marshal challan entries: %w", err)
	}

	query := `
		INSERT INTO thread_challans (id, challan_no, date, main_brand_id, entries)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, challan_no, date, main_brand_id, entries, created_at, updated_at
	`

	created, err := scanThreadChallan(q.QueryRow(ctx, query,
		uuid.NewString(), tc.ChallanNo, tc.Date, tc.MainBrandID, entries,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_thread_challan_month") {
			return challan.ThreadChallan{}, challan.ErrChallanExists
		}
		return challan.ThreadChallan{}, fmt.Errorf("failed to create challan: %w", err)
	}

	return created, nil
}

func scanThreadChallan(row pgx.Row) (challan.ThreadChallan, error) {
	var (
		tc  challan.ThreadChallan
		raw []byte
	)
	err := row.Scan(&tc.ID, &tc.ChallanNo, &tc.Date, &tc.MainBrandID, &raw, &tc.CreatedAt, &tc.UpdatedAt)
	if err != nil {
		return challan.ThreadChallan{}, err
	}
	if err := json.Unmarshal(raw, &tc.Entries); err != nil {
		return challan.ThreadChallan{}, fmt.Errorf("failed to unmarshal challan entries: %w", err)
	}
	return tc, nil
}

func (r *threadChallanRepository) GetByID(ctx context.Context, id string) (challan.ThreadChallan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, challan_no, date, main_brand_id, entries, created_at, updated_at
		FROM thread_challans
		WHERE id = $1
	`

	tc, err := scanThreadChallan(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return challan.ThreadChallan{}, challan.ErrChallanNotFound
		}
		return challan.ThreadChallan{}, fmt.Errorf("failed to get challan: %w", err)
	}

	return tc, nil
}

func (r *threadChallanRepository) List(ctx context.Context, filter challan.ListFilter) ([]challan.ThreadChallan, error) {
	q := GetQuerier(ctx, r.db)

	from, to, err := validator.MonthBounds(filter.Month)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, challan_no, date, main_brand_id, entries, created_at, updated_at
		FROM thread_challans
		WHERE date >= $1 AND date < $2
	`
	args := []any{from, to}

	if filter.CompanyID != "" {
		query += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM jsonb_array_elements(entries) e WHERE e->>'companyId' = $%d
		)`, len(args)+1)
		args = append(args, filter.CompanyID)
	}
	if filter.MainBrandID != "" {
		query += fmt.Sprintf(" AND main_brand_id = $%d", len(args)+1)
		args = append(args, filter.MainBrandID)
	}
	query += " ORDER BY challan_no ASC, date DESC"

	return r.queryChallans(ctx, q, query, args...)
}

func (r *threadChallanRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]challan.ThreadChallan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, challan_no, date, main_brand_id, entries, created_at, updated_at
		FROM thread_challans
		WHERE date >= $1 AND date < $2
		ORDER BY date ASC
	`

	return r.queryChallans(ctx, q, query, from, to)
}

func (r *threadChallanRepository) queryChallans(ctx context.Context, q database.Querier, query string, args ...any) ([]challan.ThreadChallan, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list challans: %w", err)
	}
	defer rows.Close()

	challans := make([]challan.ThreadChallan, 0)
	for rows.Next() {
		var (
			tc  challan.ThreadChallan
			raw []byte
		)
		err := rows.Scan(&tc.ID, &tc.ChallanNo, &tc.Date, &tc.MainBrandID, &raw, &tc.CreatedAt, &tc.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan challan: %w", err)
		}
		if err := json.Unmarshal(raw, &tc.Entries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal challan entries: %w", err)
		}
		challans = append(challans, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate challans: %w", err)
	}

	return challans, nil
}

func (r *threadChallanRepository) Update(ctx context.Context, tc challan.ThreadChallan) (challan.ThreadChallan, error) {
	q := GetQuerier(ctx, r.db)

	entries, err := json.Marshal(tc.Entries)
	if err != nil {
		return challan.ThreadChallan{}, fmt.Errorf("failed to marshal challan entries: %w", err)
	}

	query := `
		UPDATE thread_challans
		SET challan_no = $2, date = $3, main_brand_id = $4, entries = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, challan_no, date, main_brand_id, entries, created_at, updated_at
	`

	updated, err := scanThreadChallan(q.QueryRow(ctx, query, tc.ID, tc.ChallanNo, tc.Date, tc.MainBrandID, entries))
	if err != nil {
		if err == pgx.ErrNoRows {
			return challan.ThreadChallan{}, challan.ErrChallanNotFound
		}
		if strings.Contains(err.Error(), "uk_thread_challan_month") {
			return challan.ThreadChallan{}, challan.ErrChallanExists
		}
		return challan.ThreadChallan{}, fmt.Errorf("failed to update challan: %w", err)
	}

	return updated, nil
}

func (r *threadChallanRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM thread_challans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete challan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return challan.ErrChallanNotFound
	}

	return nil
}

func (r *threadChallanRepository) CountByBrand(ctx context.Context, brandID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM thread_challans
		WHERE main_brand_id = $1
		   OR EXISTS (SELECT 1 FROM jsonb_array_elements(entries) e WHERE e->>'companyId' = $1)
	`

	var count int64
	if err := q.QueryRow(ctx, query, brandID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count challans by brand: %w", err)
	}

	return count, nil
}
