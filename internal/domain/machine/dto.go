package machine

import "github.com/factrack/factrack-backend-go/internal/pkg/validator"

type CreateMachineRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Head     int    `json:"head"`
}

func (r *CreateMachineRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !Category(r.Category).Valid() {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be 'Top' or 'Duppata'"})
	}
	if r.Head <= 0 {
		errs = append(errs, validator.ValidationError{Field: "head", Message: "must be a positive integer"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateMachineRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Head     *int    `json:"head,omitempty"`
}

func (r *UpdateMachineRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Category != nil && !Category(*r.Category).Valid() {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be 'Top' or 'Duppata'"})
	}
	if r.Head != nil && *r.Head <= 0 {
		errs = append(errs, validator.ValidationError{Field: "head", Message: "must be a positive integer"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MachineResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Head     int    `json:"head"`
}

func NewMachineResponse(m Machine) MachineResponse {
	return MachineResponse{
		ID:       m.ID,
		Name:     m.Name,
		Category: string(m.Category),
		Head:     m.Head,
	}
}

type CreateFrameRequest struct {
	MachineID string  `json:"machineId"`
	Month     string  `json:"month"`
	Frames    float64 `json:"frames"`
}

func (r *CreateFrameRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MachineID) {
		errs = append(errs, validator.ValidationError{Field: "machineId", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if r.Frames <= 0 {
		errs = append(errs, validator.ValidationError{Field: "frames", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FrameResponse struct {
	ID        string  `json:"id"`
	MachineID string  `json:"machineId"`
	Month     string  `json:"month"`
	Frames    float64 `json:"frames"`
}

func NewFrameResponse(f MachineFrame) FrameResponse {
	return FrameResponse{
		ID:        f.ID,
		MachineID: f.MachineID,
		Month:     f.Month,
		Frames:    f.Frames,
	}
}
