package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jhoicas/obra-offline/internal/domain/entity"
	"github.com/jhoicas/obra-offline/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, name_ar, type, COALESCE(location, ''), COALESCE(location_ar, ''),
	COALESCE(phone, ''), COALESCE(email, ''), COALESCE(website, ''), created_at`

// CompanyRepo adaptador de persistencia para empresas.
type CompanyRepo struct {
	c conn
}

// NewCompanyRepository construye el adaptador sobre el Store.
func NewCompanyRepository(s *Store) *CompanyRepo {
	return &CompanyRepo{c: s.conn()}
}

// List devuelve todas las empresas ordenadas por id.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.c.query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY id`)
	if err != nil {
		return nil, translateError("list companies", err)
	}
	defer rows.Close()

	list := make([]*entity.Company, 0)
	for rows.Next() {
		co, err := scanCompany(rows)
		if err != nil {
			return nil, translateError("scan company", err)
		}
		list = append(list, co)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list companies", err)
	}
	return list, nil
}

// GetByID obtiene una empresa; (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	co, err := scanCompany(r.c.queryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError("get company", err)
	}
	return co, nil
}

func scanCompany(s scanner) (*entity.Company, error) {
	var c entity.Company
	if err := s.Scan(&c.ID, &c.Name, &c.NameAr, &c.Type, &c.Location, &c.LocationAr,
		&c.Phone, &c.Email, &c.Website, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
