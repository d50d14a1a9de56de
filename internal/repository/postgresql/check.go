package postgresql

import (
	"context"
	"fmt"

	"github.com/factrack/factrack-backend-go/internal/domain/check"
	"github.com/factrack/factrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type checkRepository struct {
	db *database.DB
}

func NewCheckRepository(db *database.DB) check.CheckRepository {
	return &checkRepository{db: db}
}

func (r *checkRepository) Get(ctx context.Context) (check.Check, error) {
	q := GetQuerier(ctx, r.db)

	var c check.Check
	err := q.QueryRow(ctx, `SELECT id, value, created_at, updated_at FROM checks WHERE id = 'singleton'`).Scan(
		&c.ID, &c.Value, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return check.Check{}, check.ErrCheckNotSet
		}
		return check.Check{}, fmt.Errorf("failed to get check flag: %w", err)
	}

	return c, nil
}

func (r *checkRepository) Upsert(ctx context.Context, value bool) (check.Check, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO checks (id, value)
		VALUES ('singleton', $1)
		ON CONFLICT (id) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING id, value, created_at, updated_at
	`

	var c check.Check
	err := q.QueryRow(ctx, query, value).Scan(&c.ID, &c.Value, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return check.Check{}, fmt.Errorf("failed to upsert check flag: %w", err)
	}

	return c, nil
}
