package cutting

import (
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateThreadPriceRequest struct {
	Name  string          `json:"threadPriceName"`
	Price decimal.Decimal `json:"price"`
}

func (r *CreateThreadPriceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "threadPriceName", Message: "is required"})
	}
	if r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "price", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateThreadPriceRequest struct {
	ID    string           `json:"-"`
	Name  *string          `json:"threadPriceName,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

func (r *UpdateThreadPriceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "threadPriceName", Message: "must not be empty"})
	}
	if r.Price != nil && r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "price", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ThreadPriceResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"threadPriceName"`
	Price decimal.Decimal `json:"price"`
}

func NewThreadPriceResponse(tp ThreadPrice) ThreadPriceResponse {
	return ThreadPriceResponse{ID: tp.ID, Name: tp.Name, Price: tp.Price}
}

type CreateCuttingUserRequest struct {
	Name string `json:"cuttingUserName"`
}

func (r *CreateCuttingUserRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{Field: "cuttingUserName", Message: "is required"}}
	}
	return nil
}

type UpdateCuttingUserRequest struct {
	ID   string `json:"-"`
	Name string `json:"cuttingUserName"`
}

func (r *UpdateCuttingUserRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{Field: "cuttingUserName", Message: "must not be empty"}}
	}
	return nil
}

type CuttingUserResponse struct {
	ID   string `json:"id"`
	Name string `json:"cuttingUserName"`
}

func NewCuttingUserResponse(cu CuttingUser) CuttingUserResponse {
	return CuttingUserResponse{ID: cu.ID, Name: cu.Name}
}

type CuttingEntryRequest struct {
	ThreadPrice string `json:"threadPrice"`
	Quantity    int    `json:"quantity"`
}

type CreateCuttingDataRequest struct {
	CuttingUser string                `json:"cuttingUser"`
	Date        string                `json:"date"`
	Entries     []CuttingEntryRequest `json:"entries"`
}

func (r *CreateCuttingDataRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CuttingUser) {
		errs = append(errs, validator.ValidationError{Field: "cuttingUser", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	errs = append(errs, validateCuttingEntries(r.Entries)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCuttingDataRequest struct {
	ID          string                `json:"-"`
	CuttingUser *string               `json:"cuttingUser,omitempty"`
	Date        *string               `json:"date,omitempty"`
	Entries     []CuttingEntryRequest `json:"entries,omitempty"`
}

func (r *UpdateCuttingDataRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CuttingUser != nil && validator.IsEmpty(*r.CuttingUser) {
		errs = append(errs, validator.ValidationError{Field: "cuttingUser", Message: "must not be empty"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.Entries != nil {
		errs = append(errs, validateCuttingEntries(r.Entries)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateCuttingEntries(entries []CuttingEntryRequest) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if len(entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "must contain at least one entry"})
		return errs
	}
	for _, e := range entries {
		if validator.IsEmpty(e.ThreadPrice) || e.Quantity < 1 {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "entries need a threadPrice and a quantity of at least 1"})
			break
		}
	}
	return errs
}

type CuttingEntryResponse struct {
	ThreadPrice     string          `json:"threadPrice"`
	ThreadPriceName string          `json:"threadPriceName"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	Total           decimal.Decimal `json:"total"`
}

type CuttingDataResponse struct {
	ID              string                 `json:"id"`
	CuttingUser     string                 `json:"cuttingUser"`
	CuttingUserName string                 `json:"cuttingUserName"`
	Date            string                 `json:"date"`
	Entries         []CuttingEntryResponse `json:"entries"`
	Total           decimal.Decimal        `json:"total"`
}

// CuttingDateGroup is one day of the grouped listing with every user's
// lists for that day and the day's subtotal, rounded to whole currency.
type CuttingDateGroup struct {
	Date     string                `json:"date"`
	Lists    []CuttingDataResponse `json:"lists"`
	Subtotal decimal.Decimal       `json:"subtotal"`
}

type CuttingUserTotal struct {
	CuttingUserName string          `json:"cuttingUserName"`
	Total           decimal.Decimal `json:"total"`
}

type MonthCuttingCountResponse struct {
	Month        string             `json:"month"`
	Users        []CuttingUserTotal `json:"users"`
	OverallTotal decimal.Decimal    `json:"overallTotal"`
}
