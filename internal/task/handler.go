package task

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"office-management/internal/transport"
	"office-management/pkg/logger"

	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Create(dto NewTaskDTO) (*Task, error)
	Update(dto UpdateTaskDTO) (*Task, error)
	Delete(taskID int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// Create handles POST /task/new (admin only).
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto NewTaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.Create(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, record)
}

// Update handles PUT /task/update (admin only).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateTaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.Update(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, record)
}

// Delete handles DELETE /task/delete/{taskId} (admin only).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	taskID, err := strconv.ParseInt(chi.URLParam(r, "taskId"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.Service.Delete(taskID); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}
