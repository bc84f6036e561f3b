package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"office-management/internal/transport"
	"office-management/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// AdminLogin handles POST /admin/login.
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.Service.AuthenticateAdmin)
}

// EmployeeLogin handles POST /employee/login.
func (h *Handler) EmployeeLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.Service.AuthenticateEmployee)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request, authenticate func(LoginDTO) (TokenResponse, error)) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, err := authenticate(dto)
	if err != nil {
		h.Logger.Error("authentication failed", "error", err)

		switch err {
		case ErrInvalidCredentials:
			h.WriteError(w, http.StatusUnauthorized, "invalid email or password")
		case ErrAccountInactive:
			h.WriteError(w, http.StatusUnauthorized, "account is inactive")
		default:
			if _, ok := err.(ValidationError); ok {
				h.WriteError(w, http.StatusBadRequest, err.Error())
			} else {
				h.WriteError(w, http.StatusInternalServerError, "internal server error")
			}
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, tokens)
}

// AuthMiddleware validates the bearer token and attaches the decoded
// identity to the request context. No database lookup happens here; the
// token payload is the only session state.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.Logger.Warn("token validation failed", "error", err)
			h.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		user := &User{ID: claims.UserID, Role: claims.Role}
		ctx := logger.With(r.Context(), "userID", claims.UserID)
		next.ServeHTTP(w, r.WithContext(ContextWithUser(ctx, user)))
	})
}

// RequireRole rejects requests whose token carries a different role.
// Role mismatches answer 401 uniformly.
func (h *Handler) RequireRole(role Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				h.WriteError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			if user.Role != role {
				h.Logger.Warn("access denied: role mismatch",
					"user_id", user.ID,
					"user_role", user.Role,
					"required_role", role)
				h.WriteError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
