package usecase

import (
	"context"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/obra-offline/internal/application/dto"
	"github.com/jhoicas/obra-offline/internal/domain"
	"github.com/jhoicas/obra-offline/internal/domain/entity"
	"github.com/jhoicas/obra-offline/internal/domain/repository"
)

const minPasswordLen = 8

// UserUseCase alta, listado y desactivación de empleados.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve los empleados, opcionalmente filtrados por empresa.
func (uc *UserUseCase) List(ctx context.Context, companyID *int64) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx, repository.UserFilter{CompanyID: companyID})
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, entityToUserResponse(u))
	}
	return items, nil
}

// Create valida, hashea la contraseña con bcrypt y persiste. Role por defecto: employee.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Role == "" {
		in.Role = entity.RoleEmployee
	}

	switch {
	case in.Username == "":
		return nil, domain.NewValidationError("username", "es requerido")
	case in.Email == "":
		return nil, domain.NewValidationError("email", "es requerido")
	case len(in.Password) < minPasswordLen:
		return nil, domain.NewValidationError("password", "debe tener al menos 8 caracteres")
	case strings.TrimSpace(in.FullName) == "":
		return nil, domain.NewValidationError("fullName", "es requerido")
	case strings.TrimSpace(in.FullNameAr) == "":
		return nil, domain.NewValidationError("fullNameAr", "es requerido")
	case in.CompanyID <= 0:
		return nil, domain.NewValidationError("companyId", "es requerido")
	case !entity.ValidRole(in.Role):
		return nil, domain.NewValidationError("role", "debe ser ceo, manager, supervisor, employee o worker")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, domain.NewValidationError("email", "formato inválido")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.Create(ctx, &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		FullNameAr:   in.FullNameAr,
		Role:         in.Role,
		Department:   in.Department,
		CompanyID:    in.CompanyID,
		ManagerID:    in.ManagerID,
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}
	out := entityToUserResponse(created)
	return &out, nil
}

// Deactivate marca al empleado como inactivo; no existe borrado físico.
func (uc *UserUseCase) Deactivate(ctx context.Context, id int64) (*dto.UserResponse, error) {
	if err := uc.repo.SetActive(ctx, id, false); err != nil {
		return nil, err
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &domain.NotFoundError{Resource: "usuario", ID: id}
	}
	out := entityToUserResponse(u)
	return &out, nil
}

func entityToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName,
		FullNameAr: u.FullNameAr,
		Role:       u.Role,
		Department: u.Department,
		CompanyID:  u.CompanyID,
		ManagerID:  u.ManagerID,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
	}
}
