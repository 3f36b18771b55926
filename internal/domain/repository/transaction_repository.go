package repository

import (
	"context"

	"github.com/jhoicas/obra-offline/internal/domain/entity"
)

// TransactionFilter filtros opcionales (AND).
type TransactionFilter struct {
	CompanyID *int64
	ProjectID *int64
}

// TransactionRepository puerto de persistencia para transacciones (append-only).
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error)
	List(ctx context.Context, f TransactionFilter) ([]*entity.Transaction, error)
}
