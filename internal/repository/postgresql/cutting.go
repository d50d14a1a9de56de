package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/factrack/factrack-backend-go/internal/domain/cutting"
	"github.com/factrack/factrack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ========== THREAD PRICES ==========

type threadPriceRepository struct {
	db *database.DB
}

func NewThreadPriceRepository(db *database.DB) cutting.ThreadPriceRepository {
	return &threadPriceRepository{db: db}
}

func (r *threadPriceRepository) Create(ctx context.Context, tp cutting.ThreadPrice) (cutting.ThreadPrice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO thread_prices (id, name, price)
		VALUES ($1, $2, $3)
		RETURNING id, name, price, created_at, updated_at
	`

	var created cutting.ThreadPrice
	err := q.QueryRow(ctx, query, uuid.NewString(), tp.Name, tp.Price).Scan(
		&created.ID, &created.Name, &created.Price, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_thread_price_name") {
			return cutting.ThreadPrice{}, cutting.ErrThreadPriceExists
		}
		return cutting.ThreadPrice{}, fmt.Errorf("failed to create thread price: %w", err)
	}

	return created, nil
}

func (r *threadPriceRepository) GetByID(ctx context.Context, id string) (cutting.ThreadPrice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, price, created_at, updated_at
		FROM thread_prices
		WHERE id = $1
	`

	var tp cutting.ThreadPrice
	err := q.QueryRow(ctx, query, id).Scan(&tp.ID, &tp.Name, &tp.Price, &tp.CreatedAt, &tp.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return cutting.ThreadPrice{}, cutting.ErrThreadPriceNotFound
		}
		return cutting.ThreadPrice{}, fmt.Errorf("failed to get thread price: %w", err)
	}

	return tp, nil
}

func (r *threadPriceRepository) List(ctx context.Context) ([]cutting.ThreadPrice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, price, created_at, updated_at
		FROM thread_prices
		ORDER BY price ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list thread prices: %w", err)
	}
	defer rows.Close()

	prices := make([]cutting.ThreadPrice, 0)
	for rows.Next() {
		var tp cutting.ThreadPrice
		if err := rows.Scan(&tp.ID, &tp.Name, &tp.Price, &tp.CreatedAt, &tp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan thread price: %w", err)
		}
		prices = append(prices, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate thread prices: %w", err)
	}

	return prices, nil
}

func (r *threadPriceRepository) Update(ctx context.Context, tp cutting.ThreadPrice) (cutting.ThreadPrice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE thread_prices
		SET name = $2, price = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, price, created_at, updated_at
	`

	var updated cutting.ThreadPrice
	err := q.QueryRow(ctx, query, tp.ID, tp.Name, tp.Price).Scan(
		&updated.ID, &updated.Name, &updated.Price, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return cutting.ThreadPrice{}, cutting.ErrThreadPriceNotFound
		}
		if strings.Contains(err.Error(), "uk_thread_price_name") {
			return cutting.ThreadPrice{}, cutting.ErrThreadPriceExists
		}
		return cutting.ThreadPrice{}, fmt.Errorf("failed to update thread price: %w", err)
	}

	return updated, nil
}

func (r *threadPriceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM thread_prices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete thread price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return cutting.ErrThreadPriceNotFound
	}

	return nil
}

// ========== CUTTING USERS ==========

type cuttingUserRepository struct {
	db *database.DB
}

func NewCuttingUserRepository(db *database.DB) cutting.CuttingUserRepository {
	return &cuttingUserRepository{db: db}
}

func (r *cuttingUserRepository) Create(ctx context.Context, cu cutting.CuttingUser) (cutting.CuttingUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO cutting_users (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at, updated_at
	`

	var created cutting.CuttingUser
	err := q.QueryRow(ctx, query, uuid.NewString(), cu.Name).Scan(
		&created.ID, &created.Name, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_cutting_user_name") {
			return cutting.CuttingUser{}, cutting.ErrCuttingUserExists
		}
		return cutting.CuttingUser{}, fmt.Errorf("failed to create cutting user: %w", err)
	}

	return created, nil
}

func (r *cuttingUserRepository) GetByID(ctx context.Context, id string) (cutting.CuttingUser, error) {
	q := GetQuerier(ctx, r.db)

	var cu cutting.CuttingUser
	err := q.QueryRow(ctx, `SELECT id, name, created_at, updated_at FROM cutting_users WHERE id = $1`, id).Scan(
		&cu.ID, &cu.Name, &cu.CreatedAt, &cu.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return cutting.CuttingUser{}, cutting.ErrCuttingUserNotFound
		}
		return cutting.CuttingUser{}, fmt.Errorf("failed to get cutting user: %w", err)
	}

	return cu, nil
}

func (r *cuttingUserRepository) List(ctx context.Context) ([]cutting.CuttingUser, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, created_at, updated_at FROM cutting_users ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cutting users: %w", err)
	}
	defer rows.Close()

	users := make([]cutting.CuttingUser, 0)
	for rows.Next() {
		var cu cutting.CuttingUser
		if err := rows.Scan(&cu.ID, &cu.Name, &cu.CreatedAt, &cu.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cutting user: %w", err)
		}
		users = append(users, cu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cutting users: %w", err)
	}

	return users, nil
}

func (r *cuttingUserRepository) Update(ctx context.Context, cu cutting.CuttingUser) (cutting.CuttingUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE cutting_users
		SET name = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, created_at, updated_at
	`

	var updated cutting.CuttingUser
	err := q.QueryRow(ctx, query, cu.ID, cu.Name).Scan(
		&updated.ID, &updated.Name, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return cutting.CuttingUser{}, cutting.ErrCuttingUserNotFound
		}
		if strings.Contains(err.Error(), "uk_cutting_user_name") {
			return cutting.CuttingUser{}, cutting.ErrCuttingUserExists
		}
		return cutting.CuttingUser{}, fmt.Errorf("failed to update cutting user: %w", err)
	}

	return updated, nil
}

func (r *cuttingUserRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM cutting_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cutting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return cutting.ErrCuttingUserNotFound
	}

	return nil
}

// ========== CUTTING DATA ==========

type cuttingDataRepository struct {
	db *database.DB
}

func NewCuttingDataRepository(db *database.DB) cutting.CuttingDataRepository {
	return &cuttingDataRepository{db: db}
}

func (r *cuttingDataRepository) Create(ctx context.Context, cd cutting.CuttingData) (cutting.CuttingData, error) {
	q := GetQuerier(ctx, r.db)

	entries, err := json.Marshal(cd.Entries)
	if err != nil {
		return cutting.CuttingData{}, fmt.Errorf("failed to marshal cutting entries: %w", err)
	}

	query := `
		INSERT INTO cutting_data_lists (id, cutting_user_id, date, entries)
		VALUES ($1, $2, $3, $4)
		RETURNING id, cutting_user_id, date, entries, created_at, updated_at
	`

	created, err := scanCuttingData(q.QueryRow(ctx, query, uuid.NewString(), cd.CuttingUserID, cd.Date, entries))
	if err != nil {
		if strings.Contains(err.Error(), "uk_cutting_data_day") {
			return cutting.CuttingData{}, cutting.ErrCuttingDataExists
		}
		return cutting.CuttingData{}, fmt.Errorf("failed to create cutting data: %w", err)
	}

	return created, nil
}

func scanCuttingData(row pgx.Row) (cutting.CuttingData, error) {
	var (
		cd  cutting.CuttingData
		raw []byte
	)
	err := row.Scan(&cd.ID, &cd.CuttingUserID, &cd.Date, &raw, &cd.CreatedAt, &cd.UpdatedAt)
	if err != nil {
		return cutting.CuttingData{}, err
	}
	if err := json.Unmarshal(raw, &cd.Entries); err != nil {
		return cutting.CuttingData{}, fmt.Errorf("failed to unmarshal cutting entries: %w", err)
	}
	return cd, nil
}

func (r *cuttingDataRepository) GetByID(ctx context.Context, id string) (cutting.CuttingData, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, cutting_user_id, date, entries, created_at, updated_at
		FROM cutting_data_lists
		WHERE id = $1
	`

	cd, err := scanCuttingData(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return cutting.CuttingData{}, cutting.ErrCuttingDataNotFound
		}
		return cutting.CuttingData{}, fmt.Errorf("failed to get cutting data: %w", err)
	}

	return cd, nil
}

func (r *cuttingDataRepository) List(ctx context.Context, from, to time.Time) ([]cutting.CuttingData, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, cutting_user_id, date, entries, created_at, updated_at
		FROM cutting_data_lists
	`
	args := make([]any, 0, 2)

	if !from.IsZero() || !to.IsZero() {
		query += " WHERE date >= $1 AND date < $2"
		args = append(args, from, to)
	}
	query += " ORDER BY date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cutting data: %w", err)
	}
	defer rows.Close()

	lists := make([]cutting.CuttingData, 0)
	for rows.Next() {
		var (
			cd  cutting.CuttingData
			raw []byte
		)
		if err := rows.Scan(&cd.ID, &cd.CuttingUserID, &cd.Date, &raw, &cd.CreatedAt, &cd.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cutting data: %w", err)
		}
		if err := json.Unmarshal(raw, &cd.Entries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cutting entries: %w", err)
		}
		lists = append(lists, cd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cutting data: %w", err)
	}

	return lists, nil
}

func (r *cuttingDataRepository) Update(ctx context.Context, cd cutting.CuttingData) (cutting.CuttingData, error) {
	q := GetQuerier(ctx, r.db)

	entries, err := json.Marshal(cd.Entries)
	if err != nil {
		return cutting.CuttingData{}, fmt.Errorf("failed to marshal cutting entries: %w", err)
	}

	query := `
		UPDATE cutting_data_lists
		SET cutting_user_id = $2, date = $3, entries = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, cutting_user_id, date, entries, created_at, updated_at
	`

	updated, err := scanCuttingData(q.QueryRow(ctx, query, cd.ID, cd.CuttingUserID, cd.Date, entries))
	if err != nil {
		if err == pgx.ErrNoRows {
			return cutting.CuttingData{}, cutting.ErrCuttingDataNotFound
		}
		if strings.Contains(err.Error(), "uk_cutting_data_day") {
			return cutting.CuttingData{}, cutting.ErrCuttingDataExists
		}
		return cutting.CuttingData{}, fmt.Errorf("failed to update cutting data: %w", err)
	}

	return updated, nil
}

func (r *cuttingDataRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM cutting_data_lists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cutting data: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return cutting.ErrCuttingDataNotFound
	}

	return nil
}

func (r *cuttingDataRepository) CountByThreadPrice(ctx context.Context, threadPriceID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM cutting_data_lists
		WHERE EXISTS (SELECT 1 FROM jsonb_array_elements(entries) e WHERE e->>'threadPriceId' = $1)
	`

	var count int64
	if err := q.QueryRow(ctx, query, threadPriceID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cutting data by thread price: %w", err)
	}

	return count, nil
}

func (r *cuttingDataRepository) CountByUser(ctx context.Context, cuttingUserID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM cutting_data_lists WHERE cutting_user_id = $1`, cuttingUserID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cutting data by user: %w", err)
	}

	return count, nil
}
