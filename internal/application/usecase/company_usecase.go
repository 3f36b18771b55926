package usecase

import (
	"context"

	"github.com/jhoicas/obra-offline/internal/application/dto"
	"github.com/jhoicas/obra-offline/internal/domain/entity"
	"github.com/jhoicas/obra-offline/internal/domain/repository"
)

// CompanyUseCase lectura de empresas (se crean solo en la siembra).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// List devuelve todas las empresas sin filtro.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, entityToCompanyResponse(c))
	}
	return items, nil
}

func entityToCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:         c.ID,
		Name:       c.Name,
		NameAr:     c.NameAr,
		Type:       c.Type,
		Location:   c.Location,
		LocationAr: c.LocationAr,
		Phone:      c.Phone,
		Email:      c.Email,
		Website:    c.Website,
		CreatedAt:  c.CreatedAt,
	}
}
