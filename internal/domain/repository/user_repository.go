package repository

import (
	"context"

	"github.com/jhoicas/obra-offline/internal/domain/entity"
)

// UserFilter filtros opcionales de igualdad; nil = sin filtro.
type UserFilter struct {
	CompanyID *int64
}

// UserRepository puerto de persistencia para empleados.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context, f UserFilter) ([]*entity.User, error)
	SetActive(ctx context.Context, id int64, active bool) error
}
