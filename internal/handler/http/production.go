package http

import (
	"encoding/json"
	"net/http"

	"github.com/factrack/factrack-backend-go/internal/domain/production"
	"github.com/factrack/factrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ProductionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type productionHandlerImpl struct {
	productionService production.ProductionService
}

func NewProductionHandler(productionService production.ProductionService) ProductionHandler {
	return &productionHandlerImpl{productionService: productionService}
}

func (h *productionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req production.CreateProductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.productionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Production recorded", result)
}

func (h *productionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := production.ListFilter{
		MonthYear: r.URL.Query().Get("monthYear"),
		WorkerID:  r.URL.Query().Get("workerId"),
		MachineID: r.URL.Query().Get("machineId"),
	}

	result, err := h.productionService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *productionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Production record ID is required", nil)
		return
	}

	var req production.UpdateProductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.productionService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *productionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Production record ID is required", nil)
		return
	}

	if err := h.productionService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Production record deleted", nil)
}
