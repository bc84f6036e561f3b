package employee

import (
	"context"
	"log/slog"
	"net/http"

	"office-management/internal/auth"
	"office-management/internal/transport"
	"office-management/pkg/logger"
)

type ServiceAPI interface {
	Register(ctx context.Context, dto RegisterEmployeeDTO) (*Employee, error)
	Update(ctx context.Context, caller *auth.User, dto UpdateEmployeeDTO) (*Employee, error)
	Delete(employeeID int64) error
	Info(employeeID int64) (*Info, error)
	All() ([]*WithAttendance, error)
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

// Register handles POST /employee/register (admin only). Accepts JSON or a
// multipart form with an optional profilePicture.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	dto, appErr := ParseRegisterRequest(r)
	if appErr != nil {
		h.HandleServiceError(w, appErr)
		return
	}

	record, err := h.Service.Register(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, record)
}

// Update handles PUT /employee/update (admin, or an employee updating their
// own record).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	dto, appErr := ParseUpdateRequest(r)
	if appErr != nil {
		h.HandleServiceError(w, appErr)
		return
	}

	record, err := h.Service.Update(r.Context(), user, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, record)
}

// Delete handles DELETE /employee/delete (admin only). The target id comes
// from the body to match the client contract.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	dto, appErr := ParseUpdateRequest(r)
	if appErr != nil {
		h.HandleServiceError(w, appErr)
		return
	}
	if dto.EmployeeID == 0 {
		h.WriteError(w, http.StatusBadRequest, "employeeId is required")
		return
	}

	if err := h.Service.Delete(dto.EmployeeID); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "employee deleted"})
}

// Info handles GET /employee/info (employee self-service aggregate).
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	info, err := h.Service.Info(user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, info)
}

// All handles GET /employee/all (admin listing with nested attendance).
func (h *Handler) All(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.All()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}
