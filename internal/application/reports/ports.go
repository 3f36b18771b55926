package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/obra-offline/internal/domain/entity"
)

// FinancialStatement datos ya agregados que necesita el generador.
type FinancialStatement struct {
	Company       *entity.Company
	Transactions  []*entity.Transaction
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Net           decimal.Decimal
	GeneratedAt   time.Time
}

// StatementPDFGenerator puerto de salida para renderizar el estado financiero.
// La implementación (maroto) vive en infrastructure/pdf.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, st *FinancialStatement) ([]byte, error)
}
