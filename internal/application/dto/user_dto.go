package dto

import "time"

// CreateUserRequest entrada para registrar un empleado.
type CreateUserRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"fullName"`
	FullNameAr string `json:"fullNameAr"`
	Role       string `json:"role"`
	Department string `json:"department"`
	CompanyID  int64  `json:"companyId"`
	ManagerID  *int64 `json:"managerId"`
}

// UserResponse salida de un empleado (sin hash de contraseña).
type UserResponse struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	FullNameAr string    `json:"fullNameAr"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	CompanyID  int64     `json:"companyId"`
	ManagerID  *int64    `json:"managerId"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}
