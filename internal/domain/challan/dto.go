package challan

import (
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ChallanEntryRequest struct {
	Company  string  `json:"company"`
	BoxCount float64 `json:"boxCount"`
}

type CreateChallanRequest struct {
	ChallanNo int                   `json:"challanNo"`
	Date      string                `json:"date"`
	Entries   []ChallanEntryRequest `json:"entries"`
}

func (r *CreateChallanRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ChallanNo <= 0 {
		errs = append(errs, validator.ValidationError{Field: "challanNo", Message: "must be a positive integer"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	errs = append(errs, validateEntries(r.Entries)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateChallanRequest struct {
	ID        string                `json:"-"`
	ChallanNo *int                  `json:"challanNo,omitempty"`
	Date      *string               `json:"date,omitempty"`
	Entries   []ChallanEntryRequest `json:"entries,omitempty"`
}

func (r *UpdateChallanRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ChallanNo != nil && *r.ChallanNo <= 0 {
		errs = append(errs, validator.ValidationError{Field: "challanNo", Message: "must be a positive integer"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.Entries != nil {
		errs = append(errs, validateEntries(r.Entries)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateEntries(entries []ChallanEntryRequest) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if len(entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "must contain at least one entry"})
		return errs
	}
	for _, e := range entries {
		if validator.IsEmpty(e.Company) || e.BoxCount <= 0 {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "entries need a company and a positive boxCount"})
			break
		}
	}
	return errs
}

type ChallanEntryResponse struct {
	Company     string          `json:"company"`
	CompanyName string          `json:"companyName"`
	BoxCount    float64         `json:"boxCount"`
	OneBoxPrice decimal.Decimal `json:"oneBoxPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

type ChallanResponse struct {
	ID            string                 `json:"id"`
	ChallanNo     int                    `json:"challanNo"`
	Date          string                 `json:"date"`
	MainBrand     string                 `json:"mainBrand"`
	MainBrandName string                 `json:"mainBrandName"`
	Entries       []ChallanEntryResponse `json:"entries"`
	TotalBoxes    float64                `json:"totalBoxes"`
	TotalPrice    decimal.Decimal        `json:"totalPrice"`
}

// SubBrandCount is one priced row of the monthly rollup: boxes for a
// sub-brand at its own box price.
type SubBrandCount struct {
	BrandName   string          `json:"brandName"`
	Boxes       float64         `json:"boxes"`
	OneBoxPrice decimal.Decimal `json:"oneBoxPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

type MainBrandCount struct {
	MainBrandName string          `json:"mainBrandName"`
	SubBrands     []SubBrandCount `json:"subBrands,omitempty"`
	TotalBoxes    float64         `json:"totalBoxes"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

type MonthThreadCountResponse struct {
	Month             string           `json:"month"`
	MainBrands        []MainBrandCount `json:"mainBrands"`
	OverallTotalBoxes float64          `json:"overallTotalBoxes"`
	OverallTotalPrice decimal.Decimal  `json:"overallTotalPrice"`
}
