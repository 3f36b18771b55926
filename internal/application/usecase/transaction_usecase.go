package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/obra-offline/internal/application/dto"
	"github.com/jhoicas/obra-offline/internal/domain"
	"github.com/jhoicas/obra-offline/internal/domain/entity"
	"github.com/jhoicas/obra-offline/internal/domain/repository"
)

// TransactionUseCase registro y consulta de movimientos financieros (append-only).
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// List devuelve transacciones filtradas por empresa y/o proyecto.
func (uc *TransactionUseCase) List(ctx context.Context, companyID, projectID *int64) ([]dto.TransactionResponse, error) {
	list, err := uc.repo.List(ctx, repository.TransactionFilter{CompanyID: companyID, ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, entityToTransactionResponse(t))
	}
	return items, nil
}

// Create valida y agrega una transacción. Currency SAR y ExchangeRate 1 por defecto.
func (uc *TransactionUseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Type != entity.TransactionIncome && in.Type != entity.TransactionExpense {
		return nil, domain.NewValidationError("type", "debe ser income o expense")
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, domain.NewValidationError("category", "es requerido")
	}
	if !in.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "debe ser mayor que cero")
	}
	if in.CompanyID <= 0 {
		return nil, domain.NewValidationError("companyId", "es requerido")
	}
	if in.CreatedBy <= 0 {
		return nil, domain.NewValidationError("createdBy", "es requerido")
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = entity.DefaultCurrency
	}
	if len(currency) != 3 {
		return nil, domain.NewValidationError("currency", "código ISO 4217 de 3 letras")
	}
	rate := decimal.NewFromInt(1)
	if in.ExchangeRate != nil {
		rate = *in.ExchangeRate
	}
	if !rate.IsPositive() {
		return nil, domain.NewValidationError("exchangeRate", "debe ser mayor que cero")
	}
	var date time.Time
	if in.TransactionDate != nil {
		date = in.TransactionDate.UTC()
	}

	created, err := uc.repo.Create(ctx, &entity.Transaction{
		Type:            in.Type,
		Category:        strings.TrimSpace(in.Category),
		Description:     in.Description,
		DescriptionAr:   in.DescriptionAr,
		Amount:          in.Amount,
		Currency:        currency,
		ExchangeRate:    rate,
		CompanyID:       in.CompanyID,
		ProjectID:       in.ProjectID,
		CreatedBy:       in.CreatedBy,
		TransactionDate: date,
	})
	if err != nil {
		return nil, err
	}
	out := entityToTransactionResponse(created)
	return &out, nil
}

func entityToTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              t.ID,
		Type:            t.Type,
		Category:        t.Category,
		Description:     t.Description,
		DescriptionAr:   t.DescriptionAr,
		Amount:          t.Amount,
		Currency:        t.Currency,
		ExchangeRate:    t.ExchangeRate,
		CompanyID:       t.CompanyID,
		ProjectID:       t.ProjectID,
		CreatedBy:       t.CreatedBy,
		TransactionDate: t.TransactionDate,
	}
}
