package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/factrack/factrack-backend-go/internal/domain/brand"
	"github.com/factrack/factrack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type threadBrandRepository struct {
	db *database.DB
}

func NewThreadBrandRepository(db *database.DB) brand.ThreadBrandRepository {
	return &threadBrandRepository{db: db}
}

func (r *threadBrandRepository) Create(ctx context.Context, tb brand.ThreadBrand) (brand.ThreadBrand, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO thread_brands (id, company_name, one_box_price, parent_brand_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, company_name, one_box_price, parent_brand_id, created_at, updated_at
	`

	var created brand.ThreadBrand
	err := q.QueryRow(ctx, query, uuid.NewString(), tb.CompanyName, tb.OneBoxPrice, tb.ParentBrandID).Scan(
		&created.ID, &created.CompanyName, &created.OneBoxPrice, &created.ParentBrandID,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_thread_brand_name") {
			return brand.ThreadBrand{}, brand.ErrBrandNameExists
		}
		return brand.ThreadBrand{}, fmt.Errorf("failed to create thread brand: %w", err)
	}

	return created, nil
}

func (r *threadBrandRepository) GetByID(ctx context.Context, id string) (brand.ThreadBrand, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_name, one_box_price, parent_brand_id, created_at, updated_at
		FROM thread_brands
		WHERE id = $1
	`

	var tb brand.ThreadBrand
	err := q.QueryRow(ctx, query, id).Scan(
		&tb.ID, &tb.CompanyName, &tb.OneBoxPrice, &tb.ParentBrandID, &tb.CreatedAt, &tb.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return brand.ThreadBrand{}, brand.ErrBrandNotFound
		}
		return brand.ThreadBrand{}, fmt.Errorf("failed to get thread brand: %w", err)
	}

	return tb, nil
}

func (r *threadBrandRepository) List(ctx context.Context) ([]brand.ThreadBrandDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT tb.id, tb.company_name, tb.one_box_price, tb.parent_brand_id, tb.created_at, tb.updated_at,
			   p.company_name
		FROM thread_brands tb
		LEFT JOIN thread_brands p ON p.id = tb.parent_brand_id
		ORDER BY tb.company_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list thread brands: %w", err)
	}
	defer rows.Close()

	brands := make([]brand.ThreadBrandDetail, 0)
	for rows.Next() {
		var d brand.ThreadBrandDetail
		err := rows.Scan(
			&d.ID, &d.CompanyName, &d.OneBoxPrice, &d.ParentBrandID, &d.CreatedAt, &d.UpdatedAt,
			&d.ParentBrandName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan thread brand: %w", err)
		}
		brands = append(brands, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate thread brands: %w", err)
	}

	return brands, nil
}

func (r *threadBrandRepository) Update(ctx context.Context, tb brand.ThreadBrand) (brand.ThreadBrand, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE thread_brands
		SET company_name = $2, one_box_price = $3, parent_brand_id = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, company_name, one_box_price, parent_brand_id, created_at, updated_at
	`

	var updated brand.ThreadBrand
	err := q.QueryRow(ctx, query, tb.ID, tb.CompanyName, tb.OneBoxPrice, tb.ParentBrandID).Scan(
		&updated.ID, &updated.CompanyName, &updated.OneBoxPrice, &updated.ParentBrandID,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return brand.ThreadBrand{}, brand.ErrBrandNotFound
		}
		if strings.Contains(err.Error(), "uk_thread_brand_name") {
			return brand.ThreadBrand{}, brand.ErrBrandNameExists
		}
		return brand.ThreadBrand{}, fmt.Errorf("failed to update thread brand: %w", err)
	}

	return updated, nil
}

func (r *threadBrandRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM thread_brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete thread brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return brand.ErrBrandNotFound
	}

	return nil
}

func (r *threadBrandRepository) CountChildren(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM thread_brands WHERE parent_brand_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count child brands: %w", err)
	}

	return count, nil
}
