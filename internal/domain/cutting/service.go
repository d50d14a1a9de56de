package cutting

import "context"

type CuttingService interface {
	CreateThreadPrice(ctx context.Context, req CreateThreadPriceRequest) (ThreadPriceResponse, error)
	ListThreadPrices(ctx context.Context) ([]ThreadPriceResponse, error)
	UpdateThreadPrice(ctx context.Context, req UpdateThreadPriceRequest) (ThreadPriceResponse, error)
	DeleteThreadPrice(ctx context.Context, id string) error

	CreateCuttingUser(ctx context.Context, req CreateCuttingUserRequest) (CuttingUserResponse, error)
	ListCuttingUsers(ctx context.Context) ([]CuttingUserResponse, error)
	UpdateCuttingUser(ctx context.Context, req UpdateCuttingUserRequest) (CuttingUserResponse, error)
	DeleteCuttingUser(ctx context.Context, id string) error

	CreateCuttingData(ctx context.Context, req CreateCuttingDataRequest) (CuttingDataResponse, error)
	// ListCuttingData groups lists by date, newest first, with priced entries
	// sorted by rate ascending and a whole-currency subtotal per day. An
	// empty month returns everything.
	ListCuttingData(ctx context.Context, month string) ([]CuttingDateGroup, error)
	UpdateCuttingData(ctx context.Context, req UpdateCuttingDataRequest) (CuttingDataResponse, error)
	DeleteCuttingData(ctx context.Context, id string) error

	// MonthCuttingCount totals each cutting user's earnings for a month.
	MonthCuttingCount(ctx context.Context, month string) (MonthCuttingCountResponse, error)
}
