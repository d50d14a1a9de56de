package http

import (
	"encoding/json"
	"net/http"

	"github.com/factrack/factrack-backend-go/internal/domain/fixvalue"
	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/factrack/factrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type FixValueHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type fixValueHandlerImpl struct {
	fixValueService fixvalue.FixValueService
}

func NewFixValueHandler(fixValueService fixvalue.FixValueService) FixValueHandler {
	return &fixValueHandlerImpl{fixValueService: fixValueService}
}

func (h *fixValueHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req fixvalue.CreateFixValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.fixValueService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Fix value created", result)
}

func (h *fixValueHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	month := chi.URLParam(r, "month")

	result, err := h.fixValueService.Get(r.Context(), machine.Category(category), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *fixValueHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req fixvalue.UpdateFixValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.Category = chi.URLParam(r, "category")
	req.Month = chi.URLParam(r, "month")

	result, err := h.fixValueService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *fixValueHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	month := chi.URLParam(r, "month")

	if err := h.fixValueService.Delete(r.Context(), machine.Category(category), month); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Fix value deleted", nil)
}
