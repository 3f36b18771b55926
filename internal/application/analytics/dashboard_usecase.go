// Package analytics contiene los agregados del dashboard financiero y el
// endpoint de tendencias.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/obra-offline/internal/application/dto"
	"github.com/jhoicas/obra-offline/internal/domain"
	"github.com/jhoicas/obra-offline/internal/domain/entity"
	"github.com/jhoicas/obra-offline/internal/domain/repository"
)

// DefaultCompanyID empresa usada cuando el cliente no envía companyId (lo
// aplica el handler; GetStats exige un id positivo).
const DefaultCompanyID int64 = 1

// DashboardUseCase calcula los indicadores del dashboard.
//
// Fuente de datos: StatsRepository (consultas read-only). Cada indicador es
// una consulta independiente; no se mantiene ningún contador en memoria.
type DashboardUseCase struct {
	stats repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stats repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats}
}

// GetStats construye el DashboardStatsDTO para la empresa indicada.
//
// Cuatro consultas en paralelo:
//  1. SUM(amount) de ingresos  → TotalRevenue
//  2. SUM(amount) de gastos    → TotalExpenses
//  3. COUNT proyectos activos  → ActiveProjects
//  4. COUNT usuarios activos   → ActiveEmployees
//
// NetProfit = TotalRevenue - TotalExpenses. Los montos se suman sin convertir
// por exchangeRate.
func (uc *DashboardUseCase) GetStats(ctx context.Context, companyID int64) (*dto.DashboardStatsDTO, error) {
	if companyID <= 0 {
		return nil, domain.NewValidationError("companyId", "debe ser un entero positivo")
	}

	var (
		revenue, expenses decimal.Decimal
		projects, users   int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := uc.stats.SumTransactions(gctx, companyID, entity.TransactionIncome)
		if err != nil {
			return fmt.Errorf("dashboard: ingresos: %w", err)
		}
		revenue = v
		return nil
	})
	g.Go(func() error {
		v, err := uc.stats.SumTransactions(gctx, companyID, entity.TransactionExpense)
		if err != nil {
			return fmt.Errorf("dashboard: gastos: %w", err)
		}
		expenses = v
		return nil
	})
	g.Go(func() error {
		n, err := uc.stats.CountProjectsByStatus(gctx, companyID, entity.ProjectActive)
		if err != nil {
			return fmt.Errorf("dashboard: proyectos activos: %w", err)
		}
		projects = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.stats.CountActiveUsers(gctx, companyID)
		if err != nil {
			return fmt.Errorf("dashboard: empleados activos: %w", err)
		}
		users = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.DashboardStatsDTO{
		CompanyID:       companyID,
		TotalRevenue:    revenue,
		TotalExpenses:   expenses,
		NetProfit:       revenue.Sub(expenses),
		ActiveProjects:  projects,
		ActiveEmployees: users,
	}, nil
}
