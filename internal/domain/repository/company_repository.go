package repository

import (
	"context"

	"github.com/jhoicas/obra-offline/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	List(ctx context.Context) ([]*entity.Company, error)
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
}
