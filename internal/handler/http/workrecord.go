package http

import (
	"encoding/json"
	"net/http"

	"github.com/factrack/factrack-backend-go/internal/domain/workrecord"
	"github.com/factrack/factrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkRecordHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	RefMachines(w http.ResponseWriter, r *http.Request)
}

type workRecordHandlerImpl struct {
	workRecordService workrecord.WorkRecordService
}

func NewWorkRecordHandler(workRecordService workrecord.WorkRecordService) WorkRecordHandler {
	return &workRecordHandlerImpl{workRecordService: workRecordService}
}

func (h *workRecordHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req workrecord.CreateWorkRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.workRecordService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work record created", result)
}

func (h *workRecordHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	filter := workrecord.SearchFilter{
		WorkerID:  r.URL.Query().Get("workerId"),
		MachineID: r.URL.Query().Get("machineId"),
		Month:     r.URL.Query().Get("month"),
	}

	result, err := h.workRecordService.Search(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workRecordHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Work record ID is required", nil)
		return
	}

	var req workrecord.UpdateWorkRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.workRecordService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workRecordHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Work record ID is required", nil)
		return
	}

	if err := h.workRecordService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work record deleted", nil)
}

func (h *workRecordHandlerImpl) RefMachines(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerId")
	if workerID == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	result, err := h.workRecordService.RefMachines(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
