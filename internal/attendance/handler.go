package attendance

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"office-management/internal/auth"
	"office-management/internal/transport"
	"office-management/pkg/logger"
)

type ServiceAPI interface {
	Mark(dto MarkAttendanceDTO) (*Attendance, error)
	MarkOwn(employeeID int64, status string) (*Attendance, error)
	UpdateStatus(dto UpdateAttendanceDTO) (*Attendance, error)
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

// Mark handles POST /attendance/mark (admin marks for an employee).
func (h *Handler) Mark(w http.ResponseWriter, r *http.Request) {
	var dto MarkAttendanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.Mark(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, record)
}

// Update handles PUT /attendance/update. Admins correct an existing record
// by id; employees mark their own attendance for today.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	var dto UpdateAttendanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		record *Attendance
		err    error
	)
	if user.IsAdmin() {
		record, err = h.Service.UpdateStatus(dto)
	} else {
		record, err = h.Service.MarkOwn(user.ID, dto.Status)
	}
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, record)
}
