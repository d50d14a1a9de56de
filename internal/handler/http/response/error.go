package response

import (
	"errors"
	"net/http"

	"github.com/factrack/factrack-backend-go/internal/domain/auth"
	"github.com/factrack/factrack-backend-go/internal/domain/brand"
	"github.com/factrack/factrack-backend-go/internal/domain/challan"
	"github.com/factrack/factrack-backend-go/internal/domain/check"
	"github.com/factrack/factrack-backend-go/internal/domain/cutting"
	"github.com/factrack/factrack-backend-go/internal/domain/fixvalue"
	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/factrack/factrack-backend-go/internal/domain/production"
	"github.com/factrack/factrack-backend-go/internal/domain/user"
	"github.com/factrack/factrack-backend-go/internal/domain/worker"
	"github.com/factrack/factrack-backend-go/internal/domain/workrecord"
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrWorkerNameExists):
		Conflict(w, "Worker name already exists")
	case errors.Is(err, worker.ErrWorkerInUse):
		Conflict(w, "Worker has production or work records and cannot be deleted")

	// Machine domain errors
	case errors.Is(err, machine.ErrMachineNotFound):
		NotFound(w, "Machine not found")
	case errors.Is(err, machine.ErrMachineNameExists):
		Conflict(w, "Machine name already exists")
	case errors.Is(err, machine.ErrMachineInUse):
		Conflict(w, "Machine is referenced by records and cannot be deleted")
	case errors.Is(err, machine.ErrUnsupportedCategory):
		BadRequest(w, "Unsupported machine category", nil)
	case errors.Is(err, machine.ErrFrameNotFound):
		NotFound(w, "Machine frame not found")
	case errors.Is(err, machine.ErrFrameExists):
		Conflict(w, "Frame target already set for this machine and month")
	case errors.Is(err, machine.ErrFrameRequiresTop):
		BadRequest(w, "Frames can only be assigned to Top machines", nil)

	// Fix value domain errors
	case errors.Is(err, fixvalue.ErrFixValueNotFound):
		NotFound(w, "Fix value not found")
	case errors.Is(err, fixvalue.ErrFixValueExists):
		Conflict(w, "Fix value already set for this category and month")

	// Production domain errors
	case errors.Is(err, production.ErrProductionNotFound):
		NotFound(w, "Production record not found")
	case errors.Is(err, production.ErrProductionExists):
		Conflict(w, "Production already recorded for this worker, machine and date")

	// Work record domain errors
	case errors.Is(err, workrecord.ErrWorkRecordNotFound):
		NotFound(w, "Work record not found")
	case errors.Is(err, workrecord.ErrNoWorkRecords):
		NotFound(w, "No work records match the given filters")

	// Brand domain errors
	case errors.Is(err, brand.ErrBrandNotFound):
		NotFound(w, "Thread brand not found")
	case errors.Is(err, brand.ErrBrandNameExists):
		Conflict(w, "Thread brand with this company name already exists")
	case errors.Is(err, brand.ErrParentBrandNotFound):
		NotFound(w, "Parent brand not found")
	case errors.Is(err, brand.ErrParentBrandNested):
		BadRequest(w, "Parent brand is itself a sub-brand", nil)
	case errors.Is(err, brand.ErrBrandHasChildren):
		Conflict(w, "Brand has sub-brands and cannot take a parent")
	case errors.Is(err, brand.ErrBrandInUse):
		Conflict(w, "Brand is referenced by challans or sub-brands and cannot be deleted")

	// Challan domain errors
	case errors.Is(err, challan.ErrChallanNotFound):
		NotFound(w, "Challan not found")
	case errors.Is(err, challan.ErrChallanExists):
		Conflict(w, "Challan number already used for this brand and month, update the existing challan instead")

	// Cutting domain errors
	case errors.Is(err, cutting.ErrThreadPriceNotFound):
		NotFound(w, "Thread price not found")
	case errors.Is(err, cutting.ErrThreadPriceExists):
		Conflict(w, "Thread price with this name already exists")
	case errors.Is(err, cutting.ErrThreadPriceInUse):
		Conflict(w, "Thread price is referenced by cutting data and cannot be deleted")
	case errors.Is(err, cutting.ErrCuttingUserNotFound):
		NotFound(w, "Cutting user not found")
	case errors.Is(err, cutting.ErrCuttingUserExists):
		Conflict(w, "Cutting user with this name already exists")
	case errors.Is(err, cutting.ErrCuttingUserInUse):
		Conflict(w, "Cutting user is referenced by cutting data and cannot be deleted")
	case errors.Is(err, cutting.ErrCuttingDataNotFound):
		NotFound(w, "Cutting data not found")
	case errors.Is(err, cutting.ErrCuttingDataExists):
		Conflict(w, "Cutting data already recorded for this user and date")

	// Check domain errors
	case errors.Is(err, check.ErrCheckNotSet):
		NotFound(w, "Check flag has not been set")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
