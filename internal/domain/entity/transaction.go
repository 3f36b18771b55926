package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// DefaultCurrency moneda base de los registros sin moneda explícita.
const DefaultCurrency = "SAR"

// Transaction movimiento financiero (append-only).
// ExchangeRate convierte Amount a la moneda base; 1.0 por defecto.
type Transaction struct {
	ID              int64
	Type            string
	Category        string
	Description     string
	DescriptionAr   string
	Amount          decimal.Decimal
	Currency        string
	ExchangeRate    decimal.Decimal
	CompanyID       int64
	ProjectID       *int64
	CreatedBy       int64
	TransactionDate time.Time
}
