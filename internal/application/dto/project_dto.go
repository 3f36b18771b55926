package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest entrada para crear un proyecto. Status, Priority y
// Progress toman defaults (planning, medium, 0) cuando no se envían.
type CreateProjectRequest struct {
	Name          string          `json:"name"`
	NameAr        string          `json:"nameAr"`
	Description   string          `json:"description"`
	DescriptionAr string          `json:"descriptionAr"`
	Status        string          `json:"status"`
	Priority      string          `json:"priority"`
	Budget        decimal.Decimal `json:"budget"`
	CompanyID     int64           `json:"companyId"`
	ManagerID     *int64          `json:"managerId"`
	Location      string          `json:"location"`
	LocationAr    string          `json:"locationAr"`
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	Progress      *int            `json:"progress"`
}

// ProjectResponse salida de un proyecto.
type ProjectResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	NameAr        string          `json:"nameAr"`
	Description   string          `json:"description"`
	DescriptionAr string          `json:"descriptionAr"`
	Status        string          `json:"status"`
	Priority      string          `json:"priority"`
	Budget        decimal.Decimal `json:"budget"`
	CompanyID     int64           `json:"companyId"`
	ManagerID     *int64          `json:"managerId"`
	Location      string          `json:"location"`
	LocationAr    string          `json:"locationAr"`
	StartDate     *string         `json:"startDate"`
	EndDate       *string         `json:"endDate"`
	Progress      int             `json:"progress"`
	CreatedAt     time.Time       `json:"createdAt"`
}
