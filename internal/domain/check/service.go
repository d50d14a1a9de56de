package check

import "context"

type CheckService interface {
	Get(ctx context.Context) (CheckResponse, error)
	Set(ctx context.Context, req SetCheckRequest) (CheckResponse, error)
}
