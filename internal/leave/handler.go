package leave

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"office-management/internal/auth"
	"office-management/internal/transport"
	"office-management/pkg/logger"

	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Create(employeeID int64, dto NewLeaveDTO) (*Leave, error)
	UpdateStatus(ctx context.Context, dto UpdateLeaveDTO) (*Leave, error)
	UpdateOwn(employeeID int64, dto UpdateLeaveDTO) (*Leave, error)
	Delete(employeeID, leaveID int64) error
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

// Create handles POST /leave/new (employee files a request for themselves).
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	var dto NewLeaveDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.Create(user.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, record)
}

// Update handles PUT /leave/update. Admins transition the status; employees
// edit their own pending request.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	var dto UpdateLeaveDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		record *Leave
		err    error
	)
	if user.IsAdmin() {
		record, err = h.Service.UpdateStatus(r.Context(), dto)
	} else {
		record, err = h.Service.UpdateOwn(user.ID, dto)
	}
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, record)
}

// Delete handles DELETE /leave/delete/{leaveId} (employee withdraws own
// pending request).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	leaveID, err := strconv.ParseInt(chi.URLParam(r, "leaveId"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid leave id")
		return
	}

	if err := h.Service.Delete(user.ID, leaveID); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "leave request deleted"})
}
