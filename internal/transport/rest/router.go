package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"office-management/internal/admin"
	"office-management/internal/attendance"
	"office-management/internal/auth"
	"office-management/internal/employee"
	"office-management/internal/leave"
	"office-management/internal/notification"
	"office-management/internal/payroll"
	"office-management/internal/task"
	"office-management/internal/transport/middleware"
	"office-management/internal/transport/swagger"

	"github.com/go-chi/chi"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth         *auth.Handler
	Admin        *admin.Handler
	Employee     *employee.Handler
	Attendance   *attendance.Handler
	Leave        *leave.Handler
	Payroll      *payroll.Handler
	Task         *task.Handler
	Notification *notification.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"office management api"}`))
	})
	router.Get("/ping", healthHandler.pingHandler)
	router.Get("/health", healthHandler.healthCheckHandler)

	// Public auth surface.
	router.Post("/admin/login", h.Auth.AdminLogin)
	router.Post("/admin/register", h.Admin.Register)
	router.Post("/employee/login", h.Auth.EmployeeLogin)

	adminOnly := h.Auth.RequireRole(auth.RoleAdmin)
	employeeOnly := h.Auth.RequireRole(auth.RoleEmployee)

	router.Group(func(pr chi.Router) {
		pr.Use(h.Auth.AuthMiddleware)

		pr.Route("/admin", func(ar chi.Router) {
			ar.Use(adminOnly)
			ar.Put("/update", h.Admin.Update)
			ar.Delete("/delete", h.Admin.Delete)
			ar.Get("/dashboard", h.Admin.GetDashboard)
		})

		pr.Route("/employee", func(er chi.Router) {
			er.With(adminOnly).Post("/register", h.Employee.Register)
			er.With(adminOnly).Delete("/delete", h.Employee.Delete)
			er.With(adminOnly).Get("/all", h.Employee.All)
			er.With(employeeOnly).Get("/info", h.Employee.Info)
			// Admin or self; ownership is enforced in the service.
			er.Put("/update", h.Employee.Update)
		})

		pr.Route("/attendance", func(ar chi.Router) {
			ar.With(adminOnly).Post("/mark", h.Attendance.Mark)
			// Dual-role: admins correct records, employees mark their own day.
			ar.Put("/update", h.Attendance.Update)
		})

		pr.Route("/leave", func(lr chi.Router) {
			lr.With(employeeOnly).Post("/new", h.Leave.Create)
			lr.With(employeeOnly).Delete("/delete/{leaveId}", h.Leave.Delete)
			// Dual-role: admins transition status, employees edit pending requests.
			lr.Put("/update", h.Leave.Update)
		})

		pr.Route("/payroll", func(yr chi.Router) {
			yr.Use(adminOnly)
			yr.Post("/new", h.Payroll.Create)
			yr.Put("/update", h.Payroll.Update)
			yr.Delete("/delete/{payrollId}", h.Payroll.Delete)
		})

		pr.Route("/task", func(tr chi.Router) {
			tr.Use(adminOnly)
			tr.Post("/new", h.Task.Create)
			tr.Put("/update", h.Task.Update)
			tr.Delete("/delete/{taskId}", h.Task.Delete)
		})

		pr.Route("/notification", func(nr chi.Router) {
			nr.Use(adminOnly)
			nr.Post("/new", h.Notification.Create)
			nr.Put("/update", h.Notification.Update)
			nr.Delete("/delete/{notificationId}", h.Notification.Delete)
		})
	})
}
