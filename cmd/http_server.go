package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"office-management/internal"
	"office-management/internal/admin"
	adminPostgres "office-management/internal/admin/postgres"
	"office-management/internal/attendance"
	attendancePostgres "office-management/internal/attendance/postgres"
	"office-management/internal/auth"
	authPostgres "office-management/internal/auth/postgres"
	"office-management/internal/core/events"
	"office-management/internal/employee"
	employeePostgres "office-management/internal/employee/postgres"
	"office-management/internal/imagestore"
	"office-management/internal/leave"
	leavePostgres "office-management/internal/leave/postgres"
	"office-management/internal/notification"
	notificationPostgres "office-management/internal/notification/postgres"
	"office-management/internal/payroll"
	payrollPostgres "office-management/internal/payroll/postgres"
	"office-management/internal/task"
	taskPostgres "office-management/internal/task/postgres"
	"office-management/internal/transport/rest"
	"office-management/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	GormDB   *gorm.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	EventBus *events.EventBus
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Config.Server.AllowedOrigins, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	appLogger := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	eventBus := events.NewEventBus(appLogger)

	imageClient := imagestore.NewClient(imagestore.Config{
		UploadURL:     config.ImageStore.UploadURL,
		APIKey:        config.ImageStore.APIKey,
		UploadTimeout: config.ImageStore.UploadTimeout,
	}, appLogger)

	tokenGenerator := auth.NewJWTTokenGenerator(config.Security.JWTSecret, config.Security.TokenDuration)

	// Repositories.
	credentialRepo := authPostgres.NewCredentialRepository(gormDB)
	adminRepo := adminPostgres.NewAdminRepository(gormDB)
	employeeRepo := employeePostgres.NewEmployeeRepository(gormDB)
	attendanceRepo := attendancePostgres.NewAttendanceRepository(gormDB)
	leaveRepo := leavePostgres.NewLeaveRepository(gormDB)
	payrollRepo := payrollPostgres.NewPayrollRepository(gormDB)
	taskRepo := taskPostgres.NewTaskRepository(gormDB)
	notificationRepo := notificationPostgres.NewNotificationRepository(gormDB)

	// Services.
	authService := auth.NewService(credentialRepo, tokenGenerator, config.Security.BCryptCost, appLogger)
	attendanceService := attendance.NewService(attendanceRepo, appLogger)
	leaveService := leave.NewService(leaveRepo, eventBus, appLogger)
	payrollService := payroll.NewService(payrollRepo, appLogger)
	taskService := task.NewService(taskRepo, appLogger)
	notificationService := notification.NewService(notificationRepo, appLogger)
	employeeService := employee.NewService(
		employeeRepo,
		attendanceRepo,
		leaveRepo,
		payrollRepo,
		taskRepo,
		notificationRepo,
		imageClient,
		authService,
		appLogger,
	)
	adminService := admin.NewService(
		adminRepo,
		employeeService,
		leaveRepo,
		payrollRepo,
		taskRepo,
		notificationRepo,
		imageClient,
		authService,
		appLogger,
	)

	eventBus.Subscribe(events.EventTypeLeaveStatusChanged, notificationService.HandleLeaveStatusChanged)

	authHandler := auth.NewHandler(authService)

	handlers := rest.Handlers{
		Auth:         authHandler,
		Admin:        admin.NewHandler(adminService),
		Employee:     employee.NewHandler(employeeService),
		Attendance:   attendance.NewHandler(attendanceService),
		Leave:        leave.NewHandler(leaveService),
		Payroll:      payroll.NewHandler(payrollService),
		Task:         task.NewHandler(taskService),
		Notification: notification.NewHandler(notificationService),
	}

	return &Dependencies{
		Config:   config,
		Logger:   appLogger,
		DB:       db,
		GormDB:   gormDB,
		Router:   chi.NewRouter(),
		Handlers: handlers,
		EventBus: eventBus,
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
