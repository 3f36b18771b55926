package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/obra-offline/internal/application/analytics"
	"github.com/jhoicas/obra-offline/internal/application/reports"
	"github.com/jhoicas/obra-offline/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC     *usecase.CompanyUseCase
	UserUC        *usecase.UserUseCase
	ProjectUC     *usecase.ProjectUseCase
	TransactionUC *usecase.TransactionUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	TrendsUC      *appanalytics.TrendsUseCase
	ReportUC      *reports.FinancialReportUseCase
	Running       func() bool // estado del Lifecycle Manager para /api/health
	Info          SystemInfo
	Metrics       *Metrics // nil = sin /metrics
}

// NewApp crea la aplicación Fiber con recover, request id y métricas.
func NewApp(name string, log zerolog.Logger, metrics *Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               name,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(RequestID(log))
	if metrics != nil {
		app.Use(metrics.Handler())
	}
	return app
}

// Router registra las rutas de la API. Todas son públicas: el servidor solo
// escucha en la interfaz local del dispositivo.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	system := NewSystemHandler(deps.Running, deps.Info)
	api.Get("/health", system.Health)
	api.Get("/version", system.Version)
	api.Get("/sync/changes", system.SyncChanges)

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	api.Get("/companies", companyHandler.List)

	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Patch("/:id/deactivate", userHandler.Deactivate)

	projects := api.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Get("/", projectHandler.List)
	projects.Post("/", projectHandler.Create)
	projects.Get("/:id", projectHandler.GetByID)

	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Create)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.TrendsUC)
	api.Get("/dashboard/stats", dashboardHandler.GetStats)
	api.Get("/intelligence/financial-trends", dashboardHandler.GetFinancialTrends)

	if deps.ReportUC != nil {
		reportHandler := NewReportHandler(deps.ReportUC)
		api.Get("/reports/financial", reportHandler.FinancialPDF)
	}
}
