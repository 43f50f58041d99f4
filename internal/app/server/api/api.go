//POST /user/register            # Register (public)
//POST /user/login               # Login (public)
//GET  /health                   # Liveness (public)
//CRUD /api/projects[/{id}]      # Projects (auth)
//CRUD /api/orders[/{id}]        # Purchase orders (auth)
//CRUD /api/clients[/{id}]       # Clients (auth)
//CRUD /api/employees[/{id}]     # Employees (auth)
//CRUD /api/documents[/{id}]     # Documents (auth)
//GET/POST/DELETE /api/folders   # Folders (auth)
//GET  /api/notifications        # Alerts plus read/dismiss ops (auth)
//GET/PUT /api/settings          # App settings (auth)

package api

import (
	clientAPI "opsboard/internal/app/server/api/http/client"
	documentAPI "opsboard/internal/app/server/api/http/document"
	employeeAPI "opsboard/internal/app/server/api/http/employee"
	healthAPI "opsboard/internal/app/server/api/http/health"
	"opsboard/internal/app/server/api/http/middleware"
	"opsboard/internal/app/server/api/http/middleware/auth"
	"opsboard/internal/app/server/api/http/middleware/logger"
	notificationAPI "opsboard/internal/app/server/api/http/notification"
	orderAPI "opsboard/internal/app/server/api/http/order"
	projectAPI "opsboard/internal/app/server/api/http/project"
	settingsAPI "opsboard/internal/app/server/api/http/settings"
	userAPI "opsboard/internal/app/server/api/http/user"
	"opsboard/internal/app/server/config"
	"opsboard/internal/domain/client"
	"opsboard/internal/domain/document"
	"opsboard/internal/domain/employee"
	"opsboard/internal/domain/notification"
	"opsboard/internal/domain/order"
	"opsboard/internal/domain/project"
	"opsboard/internal/domain/session"
	"opsboard/internal/domain/user"
	"opsboard/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health       *healthAPI.Handler
	User         *userAPI.Handler
	Project      *projectAPI.Handler
	Order        *orderAPI.Handler
	Client       *clientAPI.Handler
	Employee     *employeeAPI.Handler
	Document     *documentAPI.Handler
	Notification *notificationAPI.Handler
	Settings     *settingsAPI.Handler
}

// New builds a *chi.Mux with every operation registered through
// huma.Register, plus the notification scheduler whose lifecycle the
// caller owns.
func New(cfg *config.Config, storage *postgres.Storage, log *slog.Logger) (*chi.Mux, *notification.Scheduler) {
	mux := chi.NewMux()

	humaCfg := huma.DefaultConfig("Opsboard API", "1.0.0")
	humaCfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaCfg)

	h, scheduler := handlers(cfg, storage, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Project.SetupRoutes(API)
	h.Order.SetupRoutes(API)
	h.Client.SetupRoutes(API)
	h.Employee.SetupRoutes(API)
	h.Document.SetupRoutes(API)
	h.Notification.SetupRoutes(API)
	h.Settings.SetupRoutes(API)

	return mux, scheduler
}

func handlers(cfg *config.Config, storage *postgres.Storage, log *slog.Logger) (*Handlers, *notification.Scheduler) {
	pool := storage.Pool()

	sessionRepo := postgres.NewSessionRepository(pool, log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(pool, log)
	userService := user.NewService(userRepo, user.NewPasswordValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, middlewares.GetAllAndClear())

	projectRepo := postgres.NewProjectRepository(pool, log)
	employeeRepo := postgres.NewEmployeeRepository(pool, log)

	// The notifier reads through its own service instances; the ones the
	// handlers mutate carry it as rescanner and invalidate its cache.
	notificationService := notification.NewService(
		employee.NewService(employeeRepo, nil, log),
		project.NewService(projectRepo, nil, log),
		log,
	)
	scheduler := notification.NewScheduler(notificationService, log)

	projectService := project.NewService(projectRepo, notificationService, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	projectHandler := projectAPI.NewHandler(projectService, log, middlewares.GetAllAndClear())

	orderRepo := postgres.NewOrderRepository(pool, log)
	orderService := order.NewService(orderRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	orderHandler := orderAPI.NewHandler(orderService, log, middlewares.GetAllAndClear())

	clientRepo := postgres.NewClientRepository(pool, log)
	clientService := client.NewService(clientRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	clientHandler := clientAPI.NewHandler(clientService, log, middlewares.GetAllAndClear())

	employeeService := employee.NewService(employeeRepo, notificationService, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	employeeHandler := employeeAPI.NewHandler(employeeService, log, middlewares.GetAllAndClear())

	documentRepo := postgres.NewDocumentRepository(pool, log)
	folderRepo := postgres.NewFolderRepository(pool, log)
	documentService := document.NewService(documentRepo, folderRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	documentHandler := documentAPI.NewHandler(documentService, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	notificationHandler := notificationAPI.NewHandler(notificationService, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	settingsHandler := settingsAPI.NewHandler(cfg, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:       healthHandler,
		User:         userHandler,
		Project:      projectHandler,
		Order:        orderHandler,
		Client:       clientHandler,
		Employee:     employeeHandler,
		Document:     documentHandler,
		Notification: notificationHandler,
		Settings:     settingsHandler,
	}, scheduler
}
