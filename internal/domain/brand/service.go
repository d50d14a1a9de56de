package brand

import "context"

type BrandService interface {
	Create(ctx context.Context, req CreateBrandRequest) (BrandResponse, error)
	// List returns brands in hierarchy order: main brands alphabetically,
	// each followed by its sub-brands alphabetically, then brands whose
	// parent no longer resolves.
	List(ctx context.Context) ([]BrandResponse, error)
	Update(ctx context.Context, req UpdateBrandRequest) (BrandResponse, error)
	Delete(ctx context.Context, id string) error
}
