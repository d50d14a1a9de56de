package http

import (
	"encoding/json"
	"net/http"

	"github.com/factrack/factrack-backend-go/internal/domain/brand"
	"github.com/factrack/factrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type BrandHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type brandHandlerImpl struct {
	brandService brand.BrandService
}

func NewBrandHandler(brandService brand.BrandService) BrandHandler {
	return &brandHandlerImpl{brandService: brandService}
}

func (h *brandHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req brand.CreateBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.brandService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Thread brand created", result)
}

func (h *brandHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.brandService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *brandHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Brand ID is required", nil)
		return
	}

	var req brand.UpdateBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.brandService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *brandHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Brand ID is required", nil)
		return
	}

	if err := h.brandService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Thread brand deleted", nil)
}
