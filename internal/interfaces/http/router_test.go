package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/obra-offline/internal/application/analytics"
	"github.com/jhoicas/obra-offline/internal/application/dto"
	"github.com/jhoicas/obra-offline/internal/application/reports"
	"github.com/jhoicas/obra-offline/internal/application/usecase"
	"github.com/jhoicas/obra-offline/internal/infrastructure/pdf"
	"github.com/jhoicas/obra-offline/internal/infrastructure/sqlstore"
	apphttp "github.com/jhoicas/obra-offline/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app     *fiber.App
	store   *sqlstore.Store
	running *atomic.Bool
}

// buildTestApp levanta la API completa sobre un SQLite en memoria sembrado.
func buildTestApp(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	store, err := sqlstore.OpenMemory(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Initialize(ctx))

	companyRepo := sqlstore.NewCompanyRepository(store)
	txRepo := sqlstore.NewTransactionRepository(store)

	running := &atomic.Bool{}
	running.Store(true)

	metrics := apphttp.NewMetrics("obra_test")
	app := apphttp.NewApp("obra-test", zerolog.Nop(), metrics)
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC:     usecase.NewCompanyUseCase(companyRepo),
		UserUC:        usecase.NewUserUseCase(sqlstore.NewUserRepository(store)),
		ProjectUC:     usecase.NewProjectUseCase(sqlstore.NewProjectRepository(store)),
		TransactionUC: usecase.NewTransactionUseCase(txRepo),
		DashboardUC:   appanalytics.NewDashboardUseCase(sqlstore.NewStatsRepository(store)),
		TrendsUC:      appanalytics.NewTrendsUseCase(),
		ReportUC:      reports.NewFinancialReportUseCase(companyRepo, txRepo, pdf.NewMarotoPDFGenerator()),
		Running:       running.Load,
		Info:          apphttp.SystemInfo{Version: "1.0.0", Build: "test", Database: store.Driver()},
		Metrics:       metrics,
	})
	return &testEnv{app: app, store: store, running: running}
}

func (e *testEnv) do(t *testing.T, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Sistema
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	env := buildTestApp(t)

	resp, body := env.do(t, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	h := decode[dto.HealthResponse](t, body)
	assert.Equal(t, dto.HealthStatusHealthy, h.Status)
	assert.True(t, h.Offline)
	assert.False(t, h.Timestamp.IsZero())
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	env.running.Store(false)
	resp, body = env.do(t, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, dto.HealthStatusUnhealthy, decode[dto.HealthResponse](t, body).Status)
}

func TestVersionAndSync(t *testing.T) {
	env := buildTestApp(t)

	_, body := env.do(t, http.MethodGet, "/api/version", "")
	v := decode[dto.VersionResponse](t, body)
	assert.Equal(t, "1.0.0", v.Version)
	assert.Equal(t, apphttp.APIVersion, v.APIVersion)
	assert.Equal(t, "sqlite", v.Database)

	resp, body := env.do(t, http.MethodGet, "/api/sync/changes", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

func TestRequestIDPropagado(t *testing.T) {
	env := buildTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRutaInexistente(t *testing.T) {
	env := buildTestApp(t)
	resp, body := env.do(t, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apphttp.CodeNotFound, decode[dto.ErrorResponse](t, body).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recursos
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanies(t *testing.T) {
	env := buildTestApp(t)
	_, body := env.do(t, http.MethodGet, "/api/companies", "")
	list := decode[[]dto.CompanyResponse](t, body)
	require.Len(t, list, 1)
	assert.Equal(t, int64(sqlstore.SeedCompanyID), list[0].ID)
	assert.NotEmpty(t, list[0].NameAr)
}

func TestCreateProject_Defaults(t *testing.T) {
	env := buildTestApp(t)

	resp, body := env.do(t, http.MethodPost, "/api/projects",
		`{"name":"X","nameAr":"س","companyId":1,"budget":1000}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	p := decode[dto.ProjectResponse](t, body)
	assert.Positive(t, p.ID)
	assert.Equal(t, "planning", p.Status)
	assert.Equal(t, "medium", p.Priority)
	assert.Equal(t, 0, p.Progress)
	assert.True(t, p.Budget.Equal(decimal.NewFromInt(1000)))

	// La respuesta es la fila canónica: se puede releer por id.
	resp, body = env.do(t, http.MethodGet, "/api/projects/"+strconv.FormatInt(p.ID, 10), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, p.Name, decode[dto.ProjectResponse](t, body).Name)
}

func TestCreateProject_Validacion(t *testing.T) {
	env := buildTestApp(t)

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"sin nombre", `{"nameAr":"س","companyId":1}`, "name"},
		{"sin companyId", `{"name":"X","nameAr":"س"}`, "companyId"},
		{"status desconocido", `{"name":"X","nameAr":"س","companyId":1,"status":"paused"}`, "status"},
		{"progreso fuera de rango", `{"name":"X","nameAr":"س","companyId":1,"progress":101}`, "progress"},
		{"fecha inválida", `{"name":"X","nameAr":"س","companyId":1,"startDate":"01/02/2024"}`, "startDate"},
		{"fin antes de inicio", `{"name":"X","nameAr":"س","companyId":1,"startDate":"2024-05-01","endDate":"2024-04-01"}`, "endDate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := env.do(t, http.MethodPost, "/api/projects", tc.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))
			e := decode[dto.ErrorResponse](t, body)
			assert.Equal(t, apphttp.CodeValidation, e.Code)
			assert.Equal(t, tc.field, e.Field)
		})
	}

	resp, body := env.do(t, http.MethodPost, "/api/projects", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeInvalidBody, decode[dto.ErrorResponse](t, body).Code)
}

func TestCreateProject_EmpresaInexistente(t *testing.T) {
	env := buildTestApp(t)
	resp, body := env.do(t, http.MethodPost, "/api/projects", `{"name":"X","nameAr":"س","companyId":99}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeValidation, decode[dto.ErrorResponse](t, body).Code)
}

func TestListProjects_FiltrosAND(t *testing.T) {
	env := buildTestApp(t)
	env.do(t, http.MethodPost, "/api/projects", `{"name":"A","nameAr":"أ","companyId":1,"status":"active"}`)
	env.do(t, http.MethodPost, "/api/projects", `{"name":"B","nameAr":"ب","companyId":1,"status":"completed"}`)

	_, body := env.do(t, http.MethodGet, "/api/projects?companyId=1&status=active", "")
	list := decode[[]dto.ProjectResponse](t, body)
	require.Len(t, list, 2) // semilla + A
	for _, p := range list {
		assert.Equal(t, "active", p.Status)
		assert.Equal(t, int64(1), p.CompanyID)
	}

	_, body = env.do(t, http.MethodGet, "/api/projects?companyId=2", "")
	assert.Empty(t, decode[[]dto.ProjectResponse](t, body))
}

func TestQueryMalformada(t *testing.T) {
	env := buildTestApp(t)
	for _, target := range []string{
		"/api/projects?companyId=abc",
		"/api/users?companyId=1.5",
		"/api/transactions?projectId=x",
		"/api/dashboard/stats?companyId=uno",
		"/api/projects/abc",
	} {
		resp, body := env.do(t, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, target)
		assert.Equal(t, apphttp.CodeInvalidQuery, decode[dto.ErrorResponse](t, body).Code, target)
	}
}

func TestProjectNoEncontrado(t *testing.T) {
	env := buildTestApp(t)
	resp, body := env.do(t, http.MethodGet, "/api/projects/999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apphttp.CodeNotFound, decode[dto.ErrorResponse](t, body).Code)
}

func TestUsers_CrearYDesactivar(t *testing.T) {
	env := buildTestApp(t)

	resp, body := env.do(t, http.MethodPost, "/api/users",
		`{"username":"sara","email":"sara@example.com","password":"secreto123","fullName":"Sara","fullNameAr":"سارة","role":"supervisor","companyId":1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.NotContains(t, string(body), "password")
	u := decode[dto.UserResponse](t, body)
	assert.True(t, u.IsActive)

	_, body = env.do(t, http.MethodGet, "/api/users?companyId=1", "")
	assert.Len(t, decode[[]dto.UserResponse](t, body), 2)

	resp, body = env.do(t, http.MethodPatch, "/api/users/"+strconv.FormatInt(u.ID, 10)+"/deactivate", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[dto.UserResponse](t, body).IsActive)

	resp, _ = env.do(t, http.MethodPatch, "/api/users/999/deactivate", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboardStats(t *testing.T) {
	env := buildTestApp(t)

	resp, body := env.do(t, http.MethodPost, "/api/transactions",
		`{"type":"income","category":"contract","amount":1500.50,"companyId":1,"createdBy":1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	tx := decode[dto.TransactionResponse](t, body)
	assert.Equal(t, "SAR", tx.Currency)
	assert.True(t, tx.ExchangeRate.Equal(decimal.NewFromInt(1)))

	resp, body = env.do(t, http.MethodPost, "/api/transactions",
		`{"type":"expense","category":"materials","amount":"250.25","companyId":1,"projectId":1,"createdBy":1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	_, body = env.do(t, http.MethodGet, "/api/dashboard/stats", "")
	s := decode[dto.DashboardStatsDTO](t, body)
	assert.True(t, s.TotalRevenue.Equal(decimal.RequireFromString("1500.50")))
	assert.True(t, s.TotalExpenses.Equal(decimal.RequireFromString("250.25")))
	assert.True(t, s.NetProfit.Equal(decimal.RequireFromString("1250.25")))
	assert.Equal(t, 1, s.ActiveProjects)
	assert.Equal(t, 1, s.ActiveEmployees)
	// Montos como números JSON, no strings.
	raw := decode[map[string]any](t, body)
	assert.IsType(t, float64(0), raw["totalRevenue"])

	_, body = env.do(t, http.MethodGet, "/api/transactions?projectId=1", "")
	assert.Len(t, decode[[]dto.TransactionResponse](t, body), 1)

	resp, body = env.do(t, http.MethodPost, "/api/transactions",
		`{"type":"refund","category":"x","amount":1,"companyId":1,"createdBy":1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "type", decode[dto.ErrorResponse](t, body).Field)
}

func TestDashboardStats_SumaDeVariasTransacciones(t *testing.T) {
	env := buildTestApp(t)

	for _, body := range []string{
		`{"type":"income","category":"contract","amount":100.10,"companyId":1,"createdBy":1}`,
		`{"type":"income","category":"contract","amount":"200.20","companyId":1,"createdBy":1}`,
		`{"type":"expense","category":"materials","amount":0.10,"companyId":1,"createdBy":1}`,
		`{"type":"expense","category":"materials","amount":0.20,"companyId":1,"createdBy":1}`,
	} {
		resp, data := env.do(t, http.MethodPost, "/api/transactions", body)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	}

	resp, body := env.do(t, http.MethodGet, "/api/dashboard/stats?companyId=1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s := decode[dto.DashboardStatsDTO](t, body)
	assert.True(t, s.TotalRevenue.Equal(decimal.RequireFromString("300.30")), "revenue: %s", s.TotalRevenue)
	assert.True(t, s.TotalExpenses.Equal(decimal.RequireFromString("0.30")), "expenses: %s", s.TotalExpenses)
	assert.True(t, s.NetProfit.Equal(decimal.RequireFromString("300.00")), "net: %s", s.NetProfit)
	assert.Contains(t, string(body), `"totalRevenue":300.3`)
	assert.NotContains(t, string(body), "9999")
}

func TestDashboardStats_EmpresaInvalida(t *testing.T) {
	env := buildTestApp(t)

	for _, q := range []string{"0", "-3"} {
		resp, body := env.do(t, http.MethodGet, "/api/dashboard/stats?companyId="+q, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
		assert.Equal(t, "companyId", decode[dto.ErrorResponse](t, body).Field, q)
	}
}

func TestFinancialTrends(t *testing.T) {
	env := buildTestApp(t)
	resp, body := env.do(t, http.MethodGet, "/api/intelligence/financial-trends", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	tr := decode[dto.FinancialTrendsDTO](t, body)
	assert.Equal(t, appanalytics.TrendsSourceStatic, tr.Source)
	assert.NotEmpty(t, tr.Trends)
}

func TestFinancialReportPDF(t *testing.T) {
	env := buildTestApp(t)
	resp, body := env.do(t, http.MethodGet, "/api/reports/financial?companyId=1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "estado_financiero_1_")
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))

	resp, _ = env.do(t, http.MethodGet, "/api/reports/financial?companyId=77", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStorageError_500(t *testing.T) {
	env := buildTestApp(t)
	require.NoError(t, env.store.Close())

	resp, body := env.do(t, http.MethodGet, "/api/companies", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, apphttp.CodeInternal, decode[dto.ErrorResponse](t, body).Code)

	// El proceso sigue atendiendo.
	resp, _ = env.do(t, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	env := buildTestApp(t)
	env.do(t, http.MethodGet, "/api/companies", "")

	resp, body := env.do(t, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "obra_test_http_requests_total")
	assert.Contains(t, string(body), `path="/api/companies"`)
}
