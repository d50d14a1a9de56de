package http

import (
	"encoding/json"
	"net/http"

	"github.com/factrack/factrack-backend-go/internal/domain/cutting"
	"github.com/factrack/factrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CuttingHandler interface {
	CreateThreadPrice(w http.ResponseWriter, r *http.Request)
	ListThreadPrices(w http.ResponseWriter, r *http.Request)
	UpdateThreadPrice(w http.ResponseWriter, r *http.Request)
	DeleteThreadPrice(w http.ResponseWriter, r *http.Request)

	CreateCuttingUser(w http.ResponseWriter, r *http.Request)
	ListCuttingUsers(w http.ResponseWriter, r *http.Request)
	UpdateCuttingUser(w http.ResponseWriter, r *http.Request)
	DeleteCuttingUser(w http.ResponseWriter, r *http.Request)

	CreateCuttingData(w http.ResponseWriter, r *http.Request)
	ListCuttingData(w http.ResponseWriter, r *http.Request)
	UpdateCuttingData(w http.ResponseWriter, r *http.Request)
	DeleteCuttingData(w http.ResponseWriter, r *http.Request)

	MonthCuttingCount(w http.ResponseWriter, r *http.Request)
}

type cuttingHandlerImpl struct {
	cuttingService cutting.CuttingService
}

func NewCuttingHandler(cuttingService cutting.CuttingService) CuttingHandler {
	return &cuttingHandlerImpl{cuttingService: cuttingService}
}

// ========== THREAD PRICES ==========

func (h *cuttingHandlerImpl) CreateThreadPrice(w http.ResponseWriter, r *http.Request) {
	var req cutting.CreateThreadPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.cuttingService.CreateThreadPrice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Thread price created", result)
}

func (h *cuttingHandlerImpl) ListThreadPrices(w http.ResponseWriter, r *http.Request) {
	result, err := h.cuttingService.ListThreadPrices(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *cuttingHandlerImpl) UpdateThreadPrice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Thread price ID is required", nil)
		return
	}

	var req cutting.UpdateThreadPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.cuttingService.UpdateThreadPrice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *cuttingHandlerImpl) DeleteThreadPrice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Thread price ID is required", nil)
		return
	}

	if err := h.cuttingService.DeleteThreadPrice(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Thread price deleted", nil)
}

// ========== CUTTING USERS ==========

func (h *cuttingHandlerImpl) CreateCuttingUser(w http.ResponseWriter, r *http.Request) {
	var req cutting.CreateCuttingUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.cuttingService.CreateCuttingUser(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Cutting user created", result)
}

func (h *cuttingHandlerImpl) ListCuttingUsers(w http.ResponseWriter, r *http.Request) {
	result, err := h.cuttingService.ListCuttingUsers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *cuttingHandlerImpl) UpdateCuttingUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Cutting user ID is required", nil)
		return
	}

	var req cutting.UpdateCuttingUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.cuttingService.UpdateCuttingUser(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *cuttingHandlerImpl) DeleteCuttingUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Cutting user ID is required", nil)
		return
	}

	if err := h.cuttingService.DeleteCuttingUser(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cutting user deleted", nil)
}

// ========== CUTTING DATA ==========

func (h *cuttingHandlerImpl) CreateCuttingData(w http.ResponseWriter, r *http.Request) {
	var req cutting.CreateCuttingDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.cuttingService.CreateCuttingData(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Cutting data recorded", result)
}

func (h *cuttingHandlerImpl) ListCuttingData(w http.ResponseWriter, r *http.Request) {
	result, err := h.cuttingService.ListCuttingData(r.Context(), r.URL.Query().Get("monthYear"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *cuttingHandlerImpl) UpdateCuttingData(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Cutting data ID is required", nil)
		return
	}

	var req cutting.UpdateCuttingDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.cuttingService.UpdateCuttingData(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *cuttingHandlerImpl) DeleteCuttingData(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Cutting data ID is required", nil)
		return
	}

	if err := h.cuttingService.DeleteCuttingData(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cutting data deleted", nil)
}

func (h *cuttingHandlerImpl) MonthCuttingCount(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("monthYear")
	if month == "" {
		response.BadRequest(w, "monthYear is required", nil)
		return
	}

	result, err := h.cuttingService.MonthCuttingCount(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
