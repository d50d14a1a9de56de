package http

import (
	"encoding/json"
	"net/http"

	"github.com/factrack/factrack-backend-go/internal/domain/check"
	"github.com/factrack/factrack-backend-go/internal/handler/http/response"
)

type CheckHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Set(w http.ResponseWriter, r *http.Request)
}

type checkHandlerImpl struct {
	checkService check.CheckService
}

func NewCheckHandler(checkService check.CheckService) CheckHandler {
	return &checkHandlerImpl{checkService: checkService}
}

func (h *checkHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.checkService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *checkHandlerImpl) Set(w http.ResponseWriter, r *http.Request) {
	var req check.SetCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.checkService.Set(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
