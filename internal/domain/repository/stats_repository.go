package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatsRepository consultas agregadas read-only para el dashboard.
type StatsRepository interface {
	SumTransactions(ctx context.Context, companyID int64, txType string) (decimal.Decimal, error)
	CountProjectsByStatus(ctx context.Context, companyID int64, status string) (int, error)
	CountActiveUsers(ctx context.Context, companyID int64) (int, error)
}
