package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obra-offline/internal/domain"
	"github.com/jhoicas/obra-offline/internal/domain/entity"
	"github.com/jhoicas/obra-offline/internal/domain/repository"
)

type fakeCompanies struct{ byID map[int64]*entity.Company }

func (f fakeCompanies) List(context.Context) ([]*entity.Company, error) { return nil, nil }

func (f fakeCompanies) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	return f.byID[id], nil
}

type fakeTransactions struct {
	items  []*entity.Transaction
	filter repository.TransactionFilter
}

func (f *fakeTransactions) Create(context.Context, *entity.Transaction) (*entity.Transaction, error) {
	return nil, errors.New("no usado")
}

func (f *fakeTransactions) List(_ context.Context, flt repository.TransactionFilter) ([]*entity.Transaction, error) {
	f.filter = flt
	return f.items, nil
}

type fakeGenerator struct {
	got *FinancialStatement
	err error
}

func (g *fakeGenerator) GenerateStatementPDF(_ context.Context, st *FinancialStatement) ([]byte, error) {
	g.got = st
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-fake"), nil
}

func newUseCase(txs []*entity.Transaction, gen *fakeGenerator) (*FinancialReportUseCase, *fakeTransactions) {
	companies := fakeCompanies{byID: map[int64]*entity.Company{1: {ID: 1, Name: "Advanced Construction Co."}}}
	txRepo := &fakeTransactions{items: txs}
	uc := NewFinancialReportUseCase(companies, txRepo, gen)
	uc.now = func() time.Time { return time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC) }
	return uc, txRepo
}

func TestFinancialReport_Totals(t *testing.T) {
	txs := []*entity.Transaction{
		{Type: entity.TransactionIncome, Amount: decimal.RequireFromString("1500.50")},
		{Type: entity.TransactionExpense, Amount: decimal.RequireFromString("250.25")},
		{Type: entity.TransactionIncome, Amount: decimal.RequireFromString("99.50")},
	}
	gen := &fakeGenerator{}
	uc, txRepo := newUseCase(txs, gen)

	data, name, err := uc.DownloadPDF(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), data)
	assert.Equal(t, "estado_financiero_1_20240502.pdf", name)

	require.NotNil(t, txRepo.filter.CompanyID)
	assert.Equal(t, int64(1), *txRepo.filter.CompanyID)
	require.NotNil(t, gen.got)
	assert.True(t, gen.got.TotalIncome.Equal(decimal.RequireFromString("1600")))
	assert.True(t, gen.got.TotalExpenses.Equal(decimal.RequireFromString("250.25")))
	assert.True(t, gen.got.Net.Equal(decimal.RequireFromString("1349.75")))
}

func TestFinancialReport_UnknownCompany(t *testing.T) {
	uc, _ := newUseCase(nil, &fakeGenerator{})

	_, _, err := uc.DownloadPDF(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFinancialReport_GeneratorError(t *testing.T) {
	boom := errors.New("fuente no disponible")
	uc, _ := newUseCase(nil, &fakeGenerator{err: boom})

	_, _, err := uc.DownloadPDF(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
