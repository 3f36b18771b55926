package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jhoicas/obra-offline/internal/domain/entity"
	"github.com/jhoicas/obra-offline/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

const projectColumns = `id, name, name_ar, COALESCE(description, ''), COALESCE(description_ar, ''),
	status, priority, budget, company_id, manager_id, COALESCE(location, ''), COALESCE(location_ar, ''),
	start_date, end_date, progress, created_at`

// ProjectRepo adaptador de persistencia para proyectos.
type ProjectRepo struct {
	c conn
}

// NewProjectRepository construye el adaptador sobre el Store.
func NewProjectRepository(s *Store) *ProjectRepo {
	return &ProjectRepo{c: s.conn()}
}

// Create inserta un proyecto y lo relee por el id generado para devolver la
// representación canónica (defaults de la base incluidos).
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) (*entity.Project, error) {
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	query := `
		INSERT INTO projects (name, name_ar, description, description_ar, status, priority, budget,
			company_id, manager_id, location, location_ar, start_date, end_date, progress, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`
	var id int64
	err := r.c.queryRow(ctx, query,
		nullIfEmpty(p.Name), nullIfEmpty(p.NameAr), nullIfEmpty(p.Description), nullIfEmpty(p.DescriptionAr),
		p.Status, p.Priority, p.Budget, nullIfZero(p.CompanyID), p.ManagerID,
		nullIfEmpty(p.Location), nullIfEmpty(p.LocationAr), p.StartDate, p.EndDate, p.Progress, createdAt,
	).Scan(&id)
	if err != nil {
		return nil, translateError("insert project", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID obtiene un proyecto; (nil, nil) si no existe.
func (r *ProjectRepo) GetByID(ctx context.Context, id int64) (*entity.Project, error) {
	p, err := scanProject(r.c.queryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError("get project", err)
	}
	return p, nil
}

// List devuelve proyectos filtrados por empresa y/o estado (AND).
func (r *ProjectRepo) List(ctx context.Context, f repository.ProjectFilter) ([]*entity.Project, error) {
	var w where
	eqOpt(&w, "company_id", f.CompanyID)
	eqOpt(&w, "status", f.Status)

	rows, err := r.c.query(ctx, `SELECT `+projectColumns+` FROM projects`+w.String()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, translateError("list projects", err)
	}
	defer rows.Close()

	list := make([]*entity.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, translateError("scan project", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list projects", err)
	}
	return list, nil
}

func scanProject(s scanner) (*entity.Project, error) {
	var p entity.Project
	if err := s.Scan(&p.ID, &p.Name, &p.NameAr, &p.Description, &p.DescriptionAr,
		&p.Status, &p.Priority, &p.Budget, &p.CompanyID, &p.ManagerID, &p.Location, &p.LocationAr,
		&p.StartDate, &p.EndDate, &p.Progress, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// nullIfZero envía NULL para ids no informados (0) y así dispara NOT NULL.
func nullIfZero(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
