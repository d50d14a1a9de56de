package production

import "context"

type ProductionService interface {
	Create(ctx context.Context, req CreateProductionRequest) (ProductionResponse, error)
	List(ctx context.Context, filter ListFilter) ([]ProductionResponse, error)
	Update(ctx context.Context, req UpdateProductionRequest) (ProductionResponse, error)
	Delete(ctx context.Context, id string) error
}
