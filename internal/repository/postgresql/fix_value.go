package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/factrack/factrack-backend-go/internal/domain/fixvalue"
	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/factrack/factrack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type fixValueRepository struct {
	db *database.DB
}

func NewFixValueRepository(db *database.DB) fixvalue.FixValueRepository {
	return &fixValueRepository{db: db}
}

func (r *fixValueRepository) Create(ctx context.Context, fv fixvalue.FixValue) (fixvalue.FixValue, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO fix_values (id, category, month, fix_sal_count)
		VALUES ($1, $2, $3, $4)
		RETURNING id, category, month, fix_sal_count, created_at, updated_at
	`

	var created fixvalue.FixValue
	err := q.QueryRow(ctx, query, uuid.NewString(), fv.Category, fv.Month, fv.FixSalCount).Scan(
		&created.ID, &created.Category, &created.Month, &created.FixSalCount, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_fix_value_category_month") {
			return fixvalue.FixValue{}, fixvalue.ErrFixValueExists
		}
		return fixvalue.FixValue{}, fmt.Errorf("failed to create fix value: %w", err)
	}

	return created, nil
}

func (r *fixValueRepository) GetByCategoryMonth(ctx context.Context, category machine.Category, month string) (fixvalue.FixValue, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, category, month, fix_sal_count, created_at, updated_at
		FROM fix_values
		WHERE category = $1 AND month = $2
	`

	var fv fixvalue.FixValue
	err := q.QueryRow(ctx, query, category, month).Scan(
		&fv.ID, &fv.Category, &fv.Month, &fv.FixSalCount, &fv.CreatedAt, &fv.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fixvalue.FixValue{}, fixvalue.ErrFixValueNotFound
		}
		return fixvalue.FixValue{}, fmt.Errorf("failed to get fix value: %w", err)
	}

	return fv, nil
}

// InsertIfAbsent relies on the unique index so concurrent carry-forwards of
// the same month collapse to a single row.
func (r *fixValueRepository) InsertIfAbsent(ctx context.Context, fv fixvalue.FixValue) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO fix_values (id, category, month, fix_sal_count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (category, month) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, uuid.NewString(), fv.Category, fv.Month, fv.FixSalCount); err != nil {
		return fmt.Errorf("failed to insert fix value: %w", err)
	}

	return nil
}

func (r *fixValueRepository) Update(ctx context.Context, category machine.Category, month string, fixSalCount decimal.Decimal) (fixvalue.FixValue, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE fix_values
		SET fix_sal_count = $3, updated_at = NOW()
		WHERE category = $1 AND month = $2
		RETURNING id, category, month, fix_sal_count, created_at, updated_at
	`

	var updated fixvalue.FixValue
	err := q.QueryRow(ctx, query, category, month, fixSalCount).Scan(
		&updated.ID, &updated.Category, &updated.Month, &updated.FixSalCount, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fixvalue.FixValue{}, fixvalue.ErrFixValueNotFound
		}
		return fixvalue.FixValue{}, fmt.Errorf("failed to update fix value: %w", err)
	}

	return updated, nil
}

func (r *fixValueRepository) Delete(ctx context.Context, category machine.Category, month string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM fix_values WHERE category = $1 AND month = $2`, category, month)
	if err != nil {
		return fmt.Errorf("failed to delete fix value: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fixvalue.ErrFixValueNotFound
	}

	return nil
}
