package http

import (
	"net/http"

	"github.com/factrack/factrack-backend-go/internal/domain/salary"
	"github.com/factrack/factrack-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	MonthProductionCount(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

func (h *salaryHandlerImpl) MonthProductionCount(w http.ResponseWriter, r *http.Request) {
	workerID := r.URL.Query().Get("workerId")
	machineID := r.URL.Query().Get("machineId")
	month := r.URL.Query().Get("monthYear")

	if workerID == "" || machineID == "" || month == "" {
		response.BadRequest(w, "workerId, machineId and monthYear are required", nil)
		return
	}

	result, err := h.salaryService.ComputeMonthly(r.Context(), workerID, machineID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
