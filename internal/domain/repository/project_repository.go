package repository

import (
	"context"

	"github.com/jhoicas/obra-offline/internal/domain/entity"
)

// ProjectFilter filtros opcionales (AND).
type ProjectFilter struct {
	CompanyID *int64
	Status    *string
}

// ProjectRepository puerto de persistencia para proyectos.
type ProjectRepository interface {
	// Create inserta y relee la fila por el id generado.
	Create(ctx context.Context, project *entity.Project) (*entity.Project, error)
	GetByID(ctx context.Context, id int64) (*entity.Project, error)
	List(ctx context.Context, f ProjectFilter) ([]*entity.Project, error)
}
