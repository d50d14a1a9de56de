package worker

import (
	"time"

	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	Name       string   `json:"name"`
	Shift      string   `json:"shift"`
	LeaveDates []string `json:"leaveDates,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Shift != string(ShiftDay) && r.Shift != string(ShiftNight) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "must be 'Day' or 'Night'"})
	}
	for _, d := range r.LeaveDates {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{Field: "leaveDates", Message: "must contain YYYY-MM-DD dates"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkerRequest struct {
	ID         string    `json:"-"`
	Name       *string   `json:"name,omitempty"`
	Shift      *string   `json:"shift,omitempty"`
	LeaveDates *[]string `json:"leaveDates,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Shift != nil && *r.Shift != string(ShiftDay) && *r.Shift != string(ShiftNight) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "must be 'Day' or 'Night'"})
	}
	if r.LeaveDates != nil {
		for _, d := range *r.LeaveDates {
			if _, ok := validator.IsValidDate(d); !ok {
				errs = append(errs, validator.ValidationError{Field: "leaveDates", Message: "must contain YYYY-MM-DD dates"})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Shift      string   `json:"shift"`
	LeaveDates []string `json:"leaveDates"`
}

func NewWorkerResponse(w Worker) WorkerResponse {
	dates := make([]string, 0, len(w.LeaveDates))
	for _, d := range w.LeaveDates {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return WorkerResponse{
		ID:         w.ID,
		Name:       w.Name,
		Shift:      string(w.Shift),
		LeaveDates: dates,
	}
}

func ParseLeaveDates(dates []string) []time.Time {
	parsed := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if t, ok := validator.IsValidDate(d); ok {
			parsed = append(parsed, t)
		}
	}
	return parsed
}
