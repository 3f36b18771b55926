package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada para registrar un ingreso o gasto.
// Currency por defecto SAR y ExchangeRate 1.0.
type CreateTransactionRequest struct {
	Type            string           `json:"type"`
	Category        string           `json:"category"`
	Description     string           `json:"description"`
	DescriptionAr   string           `json:"descriptionAr"`
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	ExchangeRate    *decimal.Decimal `json:"exchangeRate"`
	CompanyID       int64            `json:"companyId"`
	ProjectID       *int64           `json:"projectId"`
	CreatedBy       int64            `json:"createdBy"`
	TransactionDate *time.Time       `json:"transactionDate"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID              int64           `json:"id"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	DescriptionAr   string          `json:"descriptionAr"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	CompanyID       int64           `json:"companyId"`
	ProjectID       *int64          `json:"projectId"`
	CreatedBy       int64           `json:"createdBy"`
	TransactionDate time.Time       `json:"transactionDate"`
}
