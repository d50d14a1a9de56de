package http

import (
	"encoding/json"
	"net/http"

	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/factrack/factrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MachineHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	CreateFrame(w http.ResponseWriter, r *http.Request)
	GetFrame(w http.ResponseWriter, r *http.Request)
	UpdateFrame(w http.ResponseWriter, r *http.Request)
	DeleteFrame(w http.ResponseWriter, r *http.Request)
}

type machineHandlerImpl struct {
	machineService machine.MachineService
}

func NewMachineHandler(machineService machine.MachineService) MachineHandler {
	return &machineHandlerImpl{machineService: machineService}
}

func (h *machineHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req machine.CreateMachineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.machineService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Machine created", result)
}

func (h *machineHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Machine ID is required", nil)
		return
	}

	result, err := h.machineService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *machineHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.machineService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *machineHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Machine ID is required", nil)
		return
	}

	var req machine.UpdateMachineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.machineService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *machineHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Machine ID is required", nil)
		return
	}

	if err := h.machineService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Machine deleted", nil)
}

func (h *machineHandlerImpl) CreateFrame(w http.ResponseWriter, r *http.Request) {
	var req machine.CreateFrameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.machineService.CreateFrame(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Frame target created", result)
}

func (h *machineHandlerImpl) GetFrame(w http.ResponseWriter, r *http.Request) {
	machineID := chi.URLParam(r, "id")
	month := chi.URLParam(r, "month")
	if machineID == "" || month == "" {
		response.BadRequest(w, "Machine ID and month are required", nil)
		return
	}

	result, err := h.machineService.GetFrame(r.Context(), machineID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *machineHandlerImpl) UpdateFrame(w http.ResponseWriter, r *http.Request) {
	machineID := chi.URLParam(r, "id")
	month := chi.URLParam(r, "month")
	if machineID == "" || month == "" {
		response.BadRequest(w, "Machine ID and month are required", nil)
		return
	}

	var req struct {
		Frames float64 `json:"frames"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.machineService.UpdateFrame(r.Context(), machineID, month, req.Frames)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *machineHandlerImpl) DeleteFrame(w http.ResponseWriter, r *http.Request) {
	machineID := chi.URLParam(r, "id")
	month := chi.URLParam(r, "month")
	if machineID == "" || month == "" {
		response.BadRequest(w, "Machine ID and month are required", nil)
		return
	}

	if err := h.machineService.DeleteFrame(r.Context(), machineID, month); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Frame target deleted", nil)
}
