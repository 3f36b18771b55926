package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jhoicas/obra-offline/internal/domain"
	"github.com/jhoicas/obra-offline/internal/domain/entity"
	"github.com/jhoicas/obra-offline/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, email, password_hash, full_name, full_name_ar, role,
	COALESCE(department, ''), company_id, manager_id, is_active, created_at`

// UserRepo adaptador de persistencia para empleados.
type UserRepo struct {
	c conn
}

// NewUserRepository construye el adaptador sobre el Store.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{c: s.conn()}
}

// Create inserta el usuario y lo relee por el id generado.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	query := `
		INSERT INTO users (username, email, password_hash, full_name, full_name_ar, role, department,
			company_id, manager_id, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`
	var id int64
	err := r.c.queryRow(ctx, query,
		nullIfEmpty(u.Username), nullIfEmpty(u.Email), nullIfEmpty(u.PasswordHash), nullIfEmpty(u.FullName), nullIfEmpty(u.FullNameAr),
		u.Role, nullIfEmpty(u.Department), u.CompanyID, u.ManagerID, u.IsActive, createdAt,
	).Scan(&id)
	if err != nil {
		return nil, translateError("insert user", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID obtiene un usuario; (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := scanUser(r.c.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError("get user", err)
	}
	return u, nil
}

// List devuelve los usuarios, opcionalmente filtrados por empresa.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, error) {
	var w where
	eqOpt(&w, "company_id", f.CompanyID)

	rows, err := r.c.query(ctx, `SELECT `+userColumns+` FROM users`+w.String()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, translateError("list users", err)
	}
	defer rows.Close()

	list := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, translateError("scan user", err)
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list users", err)
	}
	return list, nil
}

// SetActive marca el usuario como activo/inactivo (soft-delete).
func (r *UserRepo) SetActive(ctx context.Context, id int64, active bool) error {
	res, err := r.c.exec(ctx, `UPDATE users SET is_active = ? WHERE id = ?`, active, id)
	if err != nil {
		return translateError("update user", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return translateError("update user", err)
	}
	if n == 0 {
		return &domain.NotFoundError{Resource: "usuario", ID: id}
	}
	return nil
}

func scanUser(s scanner) (*entity.User, error) {
	var u entity.User
	if err := s.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.FullNameAr,
		&u.Role, &u.Department, &u.CompanyID, &u.ManagerID, &u.IsActive, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// nullIfEmpty envía NULL en lugar de "" para que NOT NULL aplique a campos requeridos.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
