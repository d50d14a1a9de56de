package fixvalue

import (
	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateFixValueRequest struct {
	Category    string          `json:"category"`
	Month       string          `json:"month"`
	FixSalCount decimal.Decimal `json:"fixSalCount"`
}

func (r *CreateFixValueRequest) Validate() error {
	var errs validator.ValidationErrors

	if !machine.Category(r.Category).Valid() {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be 'Top' or 'Duppata'"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if r.FixSalCount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "fixSalCount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateFixValueRequest struct {
	Category    string          `json:"-"`
	Month       string          `json:"-"`
	FixSalCount decimal.Decimal `json:"fixSalCount"`
}

func (r *UpdateFixValueRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FixSalCount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "fixSalCount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FixValueResponse struct {
	ID          string          `json:"id,omitempty"`
	Category    string          `json:"category"`
	Month       string          `json:"month"`
	FixSalCount decimal.Decimal `json:"fixSalCount"`
}

func NewFixValueResponse(fv FixValue) FixValueResponse {
	return FixValueResponse{
		ID:          fv.ID,
		Category:    string(fv.Category),
		Month:       fv.Month,
		FixSalCount: fv.FixSalCount,
	}
}
