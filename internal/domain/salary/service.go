package salary

import "context"

type SalaryService interface {
	// ComputeMonthly builds the salary sheet for one worker on one machine for
	// a YYYY-MM month. The frame target and daily base salary both carry
	// forward from the previous month when the requested month has no record.
	ComputeMonthly(ctx context.Context, workerID, machineID, month string) (MonthlySalaryResponse, error)
}
