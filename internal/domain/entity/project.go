package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de proyecto.
const (
	ProjectPlanning  = "planning"
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectCancelled = "cancelled"
	ProjectOnHold    = "on_hold"
)

// Prioridades de proyecto.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// ValidProjectStatus informa si s pertenece al enum de estados.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectPlanning, ProjectActive, ProjectCompleted, ProjectCancelled, ProjectOnHold:
		return true
	}
	return false
}

// ValidPriority informa si p pertenece al enum de prioridades.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Project representa una obra. Progress va de 0 a 100.
type Project struct {
	ID            int64
	Name          string
	NameAr        string
	Description   string
	DescriptionAr string
	Status        string
	Priority      string
	Budget        decimal.Decimal
	CompanyID     int64
	ManagerID     *int64
	Location      string
	LocationAr    string
	StartDate     *time.Time
	EndDate       *time.Time
	Progress      int
	CreatedAt     time.Time
}
