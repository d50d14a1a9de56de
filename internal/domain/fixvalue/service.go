package fixvalue

import (
	"context"

	"github.com/factrack/factrack-backend-go/internal/domain/machine"
)

type FixValueService interface {
	Create(ctx context.Context, req CreateFixValueRequest) (FixValueResponse, error)
	// Get returns the value for (category, month), carrying the previous
	// calendar month's value forward (and persisting the copy) when the month
	// has no record. When neither exists it returns a zero-valued response
	// without persisting anything.
	Get(ctx context.Context, category machine.Category, month string) (FixValueResponse, error)
	Update(ctx context.Context, req UpdateFixValueRequest) (FixValueResponse, error)
	Delete(ctx context.Context, category machine.Category, month string) error
}
