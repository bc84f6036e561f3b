package admin

import (
	"context"
	"log/slog"
	"net/http"

	"office-management/internal/auth"
	"office-management/internal/transport"
	"office-management/pkg/logger"
)

type ServiceAPI interface {
	Register(ctx context.Context, dto RegisterAdminDTO) (*Admin, error)
	Update(ctx context.Context, adminID int64, dto UpdateAdminDTO) (*Admin, error)
	Delete(adminID int64) error
	Dashboard(adminID int64) (*Dashboard, error)
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

// Register handles POST /admin/register (public).
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

// Update handles PUT /admin/update (admin updates their own account).
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

	record, err := h.Service.Update(r.Context(), user.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, record)
}

// Delete handles DELETE /admin/delete (admin deletes their own account).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	if err := h.Service.Delete(user.ID); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "admin deleted"})
}

// GetDashboard handles GET /admin/dashboard.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	dashboard, err := h.Service.Dashboard(user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, dashboard)
}
