package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obra-offline/internal/application/reports"
	"github.com/jhoicas/obra-offline/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "0.00",
		"999.5":     "999.50",
		"1000":      "1,000.00",
		"15000000":  "15,000,000.00",
		"-1234.567": "-1,234.57",
		"1750.75":   "1,750.75",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateStatementPDF(t *testing.T) {
	st := &reports.FinancialStatement{
		Company: &entity.Company{ID: 1, Name: "Advanced Construction Co.", Location: "Riyadh"},
		Transactions: []*entity.Transaction{
			{
				Type: entity.TransactionIncome, Category: "contract", Description: "Milestone 1",
				Amount: decimal.RequireFromString("1500.50"), Currency: "SAR",
				TransactionDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				Type: entity.TransactionExpense, Category: "materials",
				Amount: decimal.RequireFromString("250.25"), Currency: "SAR",
				TransactionDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			},
		},
		TotalIncome:   decimal.RequireFromString("1500.50"),
		TotalExpenses: decimal.RequireFromString("250.25"),
		Net:           decimal.RequireFromString("1250.25"),
		GeneratedAt:   time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC),
	}

	out, err := NewMarotoPDFGenerator().GenerateStatementPDF(context.Background(), st)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateStatementPDF_Empty(t *testing.T) {
	st := &reports.FinancialStatement{
		Company:     &entity.Company{ID: 1, Name: "Advanced Construction Co."},
		GeneratedAt: time.Now(),
	}
	out, err := NewMarotoPDFGenerator().GenerateStatementPDF(context.Background(), st)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateStatementPDF_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMarotoPDFGenerator().GenerateStatementPDF(ctx, &reports.FinancialStatement{
		Company: &entity.Company{Name: "x"},
	})
	assert.ErrorIs(t, err, context.Canceled)
}
