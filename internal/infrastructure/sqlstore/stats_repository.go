package sqlstore

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/obra-offline/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas del dashboard (read-only).
type StatsRepo struct {
	c conn
}

// NewStatsRepository construye el adaptador sobre el Store.
func NewStatsRepository(s *Store) *StatsRepo {
	return &StatsRepo{c: s.conn()}
}

// SumTransactions suma amount de las transacciones del tipo dado (0 si no hay).
// La suma se hace en Go con decimal: en SQLite SUM() sobre TEXT devuelve REAL.
func (r *StatsRepo) SumTransactions(ctx context.Context, companyID int64, txType string) (decimal.Decimal, error) {
	rows, err := r.c.query(ctx,
		`SELECT amount FROM transactions WHERE company_id = ? AND type = ?`,
		companyID, txType,
	)
	if err != nil {
		return decimal.Zero, translateError("sum transactions", err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var amount decimal.Decimal
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, translateError("sum transactions", err)
		}
		total = total.Add(amount)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, translateError("sum transactions", err)
	}
	return total, nil
}

// CountProjectsByStatus cuenta los proyectos de la empresa en el estado dado.
func (r *StatsRepo) CountProjectsByStatus(ctx context.Context, companyID int64, status string) (int, error) {
	var n int
	err := r.c.queryRow(ctx,
		`SELECT COUNT(*) FROM projects WHERE company_id = ? AND status = ?`,
		companyID, status,
	).Scan(&n)
	if err != nil {
		return 0, translateError("count projects", err)
	}
	return n, nil
}

// CountActiveUsers cuenta los empleados activos de la empresa.
func (r *StatsRepo) CountActiveUsers(ctx context.Context, companyID int64) (int, error) {
	var n int
	err := r.c.queryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE company_id = ? AND is_active = ?`,
		companyID, true,
	).Scan(&n)
	if err != nil {
		return 0, translateError("count users", err)
	}
	return n, nil
}
