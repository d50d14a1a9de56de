package check

import "context"

type CheckRepository interface {
	Get(ctx context.Context) (Check, error)
	Upsert(ctx context.Context, value bool) (Check, error)
}
