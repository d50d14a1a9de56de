package http

import (
	"encoding/json"
	"net/http"

	"github.com/factrack/factrack-backend-go/internal/domain/challan"
	"github.com/factrack/factrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ChallanHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	MonthThreadCount(w http.ResponseWriter, r *http.Request)
}

type challanHandlerImpl struct {
	challanService challan.ChallanService
}

func NewChallanHandler(challanService challan.ChallanService) ChallanHandler {
	return &challanHandlerImpl{challanService: challanService}
}

func (h *challanHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req challan.CreateChallanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.challanService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Challan created", result)
}

func (h *challanHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Challan ID is required", nil)
		return
	}

	result, err := h.challanService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *challanHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := challan.ListFilter{
		Month:       r.URL.Query().Get("monthYear"),
		CompanyID:   r.URL.Query().Get("company"),
		MainBrandID: r.URL.Query().Get("mainBrand"),
	}
	if filter.Month == "" {
		response.BadRequest(w, "monthYear is required", nil)
		return
	}

	result, err := h.challanService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *challanHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Challan ID is required", nil)
		return
	}

	var req challan.UpdateChallanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.challanService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *challanHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Challan ID is required", nil)
		return
	}

	if err := h.challanService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Challan deleted", nil)
}

func (h *challanHandlerImpl) MonthThreadCount(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("monthYear")
	if month == "" {
		response.BadRequest(w, "monthYear is required", nil)
		return
	}

	result, err := h.challanService.MonthThreadCount(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
