// Package reports genera el estado financiero descargable de una empresa.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/obra-offline/internal/domain"
	"github.com/jhoicas/obra-offline/internal/domain/entity"
	"github.com/jhoicas/obra-offline/internal/domain/repository"
)

// FinancialReportUseCase arma el estado financiero a partir de las transacciones.
type FinancialReportUseCase struct {
	companyRepo repository.CompanyRepository
	txRepo      repository.TransactionRepository
	generator   StatementPDFGenerator
	now         func() time.Time
}

// NewFinancialReportUseCase construye el caso de uso inyectando sus dependencias.
func NewFinancialReportUseCase(
	companyRepo repository.CompanyRepository,
	txRepo repository.TransactionRepository,
	generator StatementPDFGenerator,
) *FinancialReportUseCase {
	return &FinancialReportUseCase{
		companyRepo: companyRepo,
		txRepo:      txRepo,
		generator:   generator,
		now:         time.Now,
	}
}

// Build carga la empresa y sus transacciones y calcula los totales.
// Retorna NotFoundError si la empresa no existe.
func (uc *FinancialReportUseCase) Build(ctx context.Context, companyID int64) (*FinancialStatement, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, &domain.NotFoundError{Resource: "empresa", ID: companyID}
	}

	txs, err := uc.txRepo.List(ctx, repository.TransactionFilter{CompanyID: &companyID})
	if err != nil {
		return nil, err
	}

	income, expenses := decimal.Zero, decimal.Zero
	for _, t := range txs {
		switch t.Type {
		case entity.TransactionIncome:
			income = income.Add(t.Amount)
		case entity.TransactionExpense:
			expenses = expenses.Add(t.Amount)
		}
	}

	return &FinancialStatement{
		Company:       company,
		Transactions:  txs,
		TotalIncome:   income,
		TotalExpenses: expenses,
		Net:           income.Sub(expenses),
		GeneratedAt:   uc.now().UTC(),
	}, nil
}

// DownloadPDF genera el PDF del estado financiero.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - *domain.NotFoundError      si la empresa no existe.
func (uc *FinancialReportUseCase) DownloadPDF(ctx context.Context, companyID int64) (pdfBytes []byte, filename string, err error) {
	st, err := uc.Build(ctx, companyID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateStatementPDF(ctx, st)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("estado_financiero_%d_%s.pdf", companyID, st.GeneratedAt.Format("20060102"))
	return pdfBytes, filename, nil
}
