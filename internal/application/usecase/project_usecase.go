package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/obra-offline/internal/application/dto"
	"github.com/jhoicas/obra-offline/internal/domain"
	"github.com/jhoicas/obra-offline/internal/domain/entity"
	"github.com/jhoicas/obra-offline/internal/domain/repository"
)

// ProjectUseCase listado, consulta y alta de proyectos.
type ProjectUseCase struct {
	repo repository.ProjectRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

// List devuelve los proyectos que cumplen todos los filtros informados.
func (uc *ProjectUseCase) List(ctx context.Context, companyID *int64, status *string) ([]dto.ProjectResponse, error) {
	if status != nil && !entity.ValidProjectStatus(*status) {
		return nil, domain.NewValidationError("status", "estado desconocido")
	}
	list, err := uc.repo.List(ctx, repository.ProjectFilter{CompanyID: companyID, Status: status})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		items = append(items, entityToProjectResponse(p))
	}
	return items, nil
}

// GetByID devuelve el proyecto o NotFoundError.
func (uc *ProjectUseCase) GetByID(ctx context.Context, id int64) (*dto.ProjectResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &domain.NotFoundError{Resource: "proyecto", ID: id}
	}
	out := entityToProjectResponse(p)
	return &out, nil
}

// Create valida la entrada, aplica defaults (planning, medium, progreso 0) y
// devuelve la fila canónica releída de la base.
func (uc *ProjectUseCase) Create(ctx context.Context, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	p, err := projectFromRequest(in)
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	out := entityToProjectResponse(created)
	return &out, nil
}

func projectFromRequest(in dto.CreateProjectRequest) (*entity.Project, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	if strings.TrimSpace(in.NameAr) == "" {
		return nil, domain.NewValidationError("nameAr", "es requerido")
	}
	if in.CompanyID <= 0 {
		return nil, domain.NewValidationError("companyId", "es requerido")
	}
	if in.Status == "" {
		in.Status = entity.ProjectPlanning
	}
	if !entity.ValidProjectStatus(in.Status) {
		return nil, domain.NewValidationError("status", "estado desconocido")
	}
	if in.Priority == "" {
		in.Priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(in.Priority) {
		return nil, domain.NewValidationError("priority", "prioridad desconocida")
	}
	if in.Budget.IsNegative() {
		return nil, domain.NewValidationError("budget", "no puede ser negativo")
	}
	progress := 0
	if in.Progress != nil {
		progress = *in.Progress
	}
	if progress < 0 || progress > 100 {
		return nil, domain.NewValidationError("progress", "debe estar entre 0 y 100")
	}

	start, err := parseDate("startDate", in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("endDate", in.EndDate)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, domain.NewValidationError("endDate", "no puede ser anterior a startDate")
	}

	return &entity.Project{
		Name:          strings.TrimSpace(in.Name),
		NameAr:        strings.TrimSpace(in.NameAr),
		Description:   in.Description,
		DescriptionAr: in.DescriptionAr,
		Status:        in.Status,
		Priority:      in.Priority,
		Budget:        in.Budget,
		CompanyID:     in.CompanyID,
		ManagerID:     in.ManagerID,
		Location:      in.Location,
		LocationAr:    in.LocationAr,
		StartDate:     start,
		EndDate:       end,
		Progress:      progress,
	}, nil
}

// parseDate acepta YYYY-MM-DD o RFC3339; "" = sin fecha.
func parseDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(dto.DateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, domain.NewValidationError(field, "formato de fecha inválido (YYYY-MM-DD)")
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dto.DateLayout)
	return &s
}

func entityToProjectResponse(p *entity.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		NameAr:        p.NameAr,
		Description:   p.Description,
		DescriptionAr: p.DescriptionAr,
		Status:        p.Status,
		Priority:      p.Priority,
		Budget:        p.Budget,
		CompanyID:     p.CompanyID,
		ManagerID:     p.ManagerID,
		Location:      p.Location,
		LocationAr:    p.LocationAr,
		StartDate:     formatDate(p.StartDate),
		EndDate:       formatDate(p.EndDate),
		Progress:      p.Progress,
		CreatedAt:     p.CreatedAt,
	}
}
