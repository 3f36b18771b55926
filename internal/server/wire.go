package server

import (
	"os"
	"strings"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/obra-offline/internal/application/analytics"
	"github.com/jhoicas/obra-offline/internal/application/reports"
	"github.com/jhoicas/obra-offline/internal/application/usecase"
	infrapdf "github.com/jhoicas/obra-offline/internal/infrastructure/pdf"
	"github.com/jhoicas/obra-offline/internal/infrastructure/sqlstore"
	httpRouter "github.com/jhoicas/obra-offline/internal/interfaces/http"
)

// buildApp conecta repositorios, casos de uso y rutas sobre el store abierto.
func (s *Server) buildApp(store *sqlstore.Store) *fiber.App {
	// Repositorios
	companyRepo := sqlstore.NewCompanyRepository(store)
	userRepo := sqlstore.NewUserRepository(store)
	projectRepo := sqlstore.NewProjectRepository(store)
	txRepo := sqlstore.NewTransactionRepository(store)
	statsRepo := sqlstore.NewStatsRepository(store)

	// PDF: estado financiero
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	metrics := httpRouter.NewMetrics(metricsPrefix(s.cfg.App.Name))
	app := httpRouter.NewApp(s.cfg.App.Name, s.log.Zerolog(), metrics)

	// Swagger UI: http://localhost:<port>/docs
	if path := s.cfg.HTTP.SwaggerFile; path != "" {
		if _, err := os.Stat(path); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: path,
				Path:     "docs",
				Title:    "Obra Offline API",
			}))
		} else {
			s.log.Warn().Str("file", path).Msg("swagger deshabilitado: archivo no encontrado")
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:     usecase.NewCompanyUseCase(companyRepo),
		UserUC:        usecase.NewUserUseCase(userRepo),
		ProjectUC:     usecase.NewProjectUseCase(projectRepo),
		TransactionUC: usecase.NewTransactionUseCase(txRepo),
		DashboardUC:   appanalytics.NewDashboardUseCase(statsRepo),
		TrendsUC:      appanalytics.NewTrendsUseCase(),
		ReportUC:      reports.NewFinancialReportUseCase(companyRepo, txRepo, pdfGenerator),
		Running:       s.IsRunning,
		Info: httpRouter.SystemInfo{
			Version:  s.cfg.App.Version,
			Build:    s.cfg.App.Build,
			Database: store.Driver(),
		},
		Metrics: metrics,
	})
	return app
}

// metricsPrefix "obra-offline" → "obra_offline".
func metricsPrefix(name string) string {
	p := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if p == "" {
		return "obra_offline"
	}
	return p
}
