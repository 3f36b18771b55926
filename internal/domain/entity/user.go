package entity

import "time"

// Roles válidos para User.
const (
	RoleCEO        = "ceo"
	RoleManager    = "manager"
	RoleSupervisor = "supervisor"
	RoleEmployee   = "employee"
	RoleWorker     = "worker"
)

// ValidRole informa si r pertenece al enum de roles.
func ValidRole(r string) bool {
	switch r {
	case RoleCEO, RoleManager, RoleSupervisor, RoleEmployee, RoleWorker:
		return true
	}
	return false
}

// User representa un empleado (pertenece a una Company).
// ManagerID forma un árbol organizacional; esta capa no valida ciclos.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca se serializa
	FullName     string
	FullNameAr   string
	Role         string
	Department   string
	CompanyID    int64
	ManagerID    *int64
	IsActive     bool
	CreatedAt    time.Time
}
