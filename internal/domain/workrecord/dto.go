package workrecord

import (
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateWorkRecordRequest struct {
	WorkerID   string  `json:"workerId"`
	MachineID  string  `json:"machineId"`
	Date       string  `json:"date"`
	WorkShift  string  `json:"workShift"`
	Production float64 `json:"production"`
}

func (r *CreateWorkRecordRequest) Validate() error {
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
	if !Shift(r.WorkShift).Valid() {
		errs = append(errs, validator.ValidationError{Field: "workShift", Message: "must be 'day' or 'night'"})
	}
	if r.Production < 0 {
		errs = append(errs, validator.ValidationError{Field: "production", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkRecordRequest struct {
	ID         string   `json:"-"`
	WorkerID   *string  `json:"workerId,omitempty"`
	MachineID  *string  `json:"machineId,omitempty"`
	Date       *string  `json:"date,omitempty"`
	WorkShift  *string  `json:"workShift,omitempty"`
	Production *float64 `json:"production,omitempty"`
}

func (r *UpdateWorkRecordRequest) Validate() error {
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
	if r.WorkShift != nil && !Shift(*r.WorkShift).Valid() {
		errs = append(errs, validator.ValidationError{Field: "workShift", Message: "must be 'day' or 'night'"})
	}
	if r.Production != nil && *r.Production < 0 {
		errs = append(errs, validator.ValidationError{Field: "production", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkRecordResponse struct {
	ID          string          `json:"id"`
	WorkerID    string          `json:"workerId"`
	WorkerName  string          `json:"workerName,omitempty"`
	MachineID   string          `json:"machineId"`
	MachineName string          `json:"machineName,omitempty"`
	Date        string          `json:"date"`
	WorkShift   string          `json:"workShift"`
	Production  float64         `json:"production"`
	Frames      float64         `json:"frames"`
	Bonus       decimal.Decimal `json:"bonus"`
	Salary      decimal.Decimal `json:"salary"`
	Total       decimal.Decimal `json:"total"`
}

func NewWorkRecordResponse(wr WorkRecord) WorkRecordResponse {
	return WorkRecordResponse{
		ID:         wr.ID,
		WorkerID:   wr.WorkerID,
		MachineID:  wr.MachineID,
		Date:       wr.Date.Format("2006-01-02"),
		WorkShift:  string(wr.WorkShift),
		Production: wr.Production,
		Frames:     wr.Frames,
		Bonus:      wr.Bonus,
		Salary:     wr.Salary,
		Total:      wr.Total,
	}
}

func NewWorkRecordDetailResponse(d WorkRecordDetail) WorkRecordResponse {
	resp := NewWorkRecordResponse(d.WorkRecord)
	resp.WorkerName = d.WorkerName
	resp.MachineName = d.MachineName
	return resp
}
