package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	CompanyID       int64           `json:"companyId"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`  // suma de ingresos
	TotalExpenses   decimal.Decimal `json:"totalExpenses"` // suma de gastos
	NetProfit       decimal.Decimal `json:"netProfit"`     // ingresos - gastos
	ActiveProjects  int             `json:"activeProjects"`
	ActiveEmployees int             `json:"activeEmployees"`
}

// TrendPointDTO un mes de la serie de tendencias financieras.
type TrendPointDTO struct {
	Month    string          `json:"month"`
	MonthAr  string          `json:"monthAr"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// FinancialTrendsDTO respuesta de GET /api/intelligence/financial-trends.
type FinancialTrendsDTO struct {
	Trends      []TrendPointDTO `json:"trends"`
	Forecast    []TrendPointDTO `json:"forecast"`
	GrowthRate  decimal.Decimal `json:"growthRate"`
	Confidence  decimal.Decimal `json:"confidence"`
	Insights    []string        `json:"insights"`
	InsightsAr  []string        `json:"insightsAr"`
	GeneratedAt string          `json:"generatedAt"`
	Source      string          `json:"source"`
}
