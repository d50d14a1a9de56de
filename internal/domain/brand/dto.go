package brand

import (
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateBrandRequest struct {
	CompanyName   string          `json:"companyName"`
	OneBoxPrice   decimal.Decimal `json:"oneBoxPrice"`
	ParentBrandID *string         `json:"parentBrand,omitempty"`
}

func (r *CreateBrandRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyName) {
		errs = append(errs, validator.ValidationError{Field: "companyName", Message: "is required"})
	}
	if r.OneBoxPrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "oneBoxPrice", Message: "must be non-negative"})
	}
	if r.ParentBrandID != nil && validator.IsEmpty(*r.ParentBrandID) {
		errs = append(errs, validator.ValidationError{Field: "parentBrand", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBrandRequest struct {
	ID            string           `json:"-"`
	CompanyName   *string          `json:"companyName,omitempty"`
	OneBoxPrice   *decimal.Decimal `json:"oneBoxPrice,omitempty"`
	ParentBrandID *string          `json:"parentBrand,omitempty"`
	// ClearParent detaches the brand from its parent. It wins over
	// ParentBrandID when both are set.
	ClearParent bool `json:"clearParent,omitempty"`
}

func (r *UpdateBrandRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompanyName != nil && validator.IsEmpty(*r.CompanyName) {
		errs = append(errs, validator.ValidationError{Field: "companyName", Message: "must not be empty"})
	}
	if r.OneBoxPrice != nil && r.OneBoxPrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "oneBoxPrice", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BrandResponse struct {
	ID              string          `json:"id"`
	CompanyName     string          `json:"companyName"`
	OneBoxPrice     decimal.Decimal `json:"oneBoxPrice"`
	ParentBrandID   *string         `json:"parentBrand,omitempty"`
	ParentBrandName *string         `json:"parentBrandName,omitempty"`
}

func NewBrandResponse(tb ThreadBrand) BrandResponse {
	return BrandResponse{
		ID:            tb.ID,
		CompanyName:   tb.CompanyName,
		OneBoxPrice:   tb.OneBoxPrice,
		ParentBrandID: tb.ParentBrandID,
	}
}

func NewBrandDetailResponse(d ThreadBrandDetail) BrandResponse {
	resp := NewBrandResponse(d.ThreadBrand)
	resp.ParentBrandName = d.ParentBrandName
	return resp
}
