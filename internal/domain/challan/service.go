package challan

import "context"

type ChallanService interface {
	Create(ctx context.Context, req CreateChallanRequest) (ChallanResponse, error)
	GetByID(ctx context.Context, id string) (ChallanResponse, error)
	List(ctx context.Context, filter ListFilter) ([]ChallanResponse, error)
	Update(ctx context.Context, req UpdateChallanRequest) (ChallanResponse, error)
	Delete(ctx context.Context, id string) error
	// MonthThreadCount aggregates the month's challan entries into per-brand
	// box and price totals, grouped under each sub-brand's main brand.
	MonthThreadCount(ctx context.Context, month string) (MonthThreadCountResponse, error)
}
