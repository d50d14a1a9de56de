package production

import (
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
)

type CreateProductionRequest struct {
	WorkerID   string      `json:"workerId"`
	MachineID  string      `json:"machineId"`
	Date       string      `json:"date"`
	Production *float64    `json:"production,omitempty"`
	Frames     []FramePair `json:"frames,omitempty"`
}

func (r *CreateProductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "workerId", Message: "is required"})
	}
	if validator.IsEmpty(r.MachineID) {
		errs = append(errs, validator.ValidationError{Field: "machineId", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	errs = append(errs, validatePayload(r.Production, r.Frames)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProductionRequest struct {
	ID         string      `json:"-"`
	WorkerID   *string     `json:"workerId,omitempty"`
	MachineID  *string     `json:"machineId,omitempty"`
	Date       *string     `json:"date,omitempty"`
	Production *float64    `json:"production,omitempty"`
	Frames     []FramePair `json:"frames,omitempty"`
}

func (r *UpdateProductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkerID != nil && validator.IsEmpty(*r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "workerId", Message: "must not be empty"})
	}
	if r.MachineID != nil && validator.IsEmpty(*r.MachineID) {
		errs = append(errs, validator.ValidationError{Field: "machineId", Message: "must not be empty"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	errs = append(errs, validatePayload(r.Production, r.Frames)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validatePayload checks the shape shared by create and update. Which of the
// two payloads is required depends on the machine category, which only the
// service knows; here we reject values that are invalid in any category.
func validatePayload(prod *float64, frames []FramePair) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if prod != nil && *prod < 0 {
		errs = append(errs, validator.ValidationError{Field: "production", Message: "must be non-negative"})
	}
	if len(frames) > 3 {
		errs = append(errs, validator.ValidationError{Field: "frames", Message: "must contain at most 3 pairs"})
	}
	for _, p := range frames {
		if p.Production < 0 || p.Frame <= 0 {
			errs = append(errs, validator.ValidationError{Field: "frames", Message: "pairs need non-negative production and positive frame"})
			break
		}
	}
	return errs
}

type ProductionResponse struct {
	ID          string      `json:"id"`
	WorkerID    string      `json:"workerId"`
	WorkerName  string      `json:"workerName,omitempty"`
	MachineID   string      `json:"machineId"`
	MachineName string      `json:"machineName,omitempty"`
	Date        string      `json:"date"`
	Category    string      `json:"category"`
	Production  *float64    `json:"production,omitempty"`
	Frames      []FramePair `json:"frames,omitempty"`
}

func NewProductionResponse(wp WorkerProduction) ProductionResponse {
	return ProductionResponse{
		ID:         wp.ID,
		WorkerID:   wp.WorkerID,
		MachineID:  wp.MachineID,
		Date:       wp.Date.Format("2006-01-02"),
		Category:   string(wp.Category),
		Production: wp.Production,
		Frames:     wp.Frames,
	}
}

func NewProductionDetailResponse(d WorkerProductionDetail) ProductionResponse {
	resp := NewProductionResponse(d.WorkerProduction)
	resp.WorkerName = d.WorkerName
	resp.MachineName = d.MachineName
	return resp
}
