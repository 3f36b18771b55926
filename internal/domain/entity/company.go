package entity

import "time"

// Tipos de empresa.
const (
	CompanyTypeContractor    = "contractor"
	CompanyTypeSubcontractor = "subcontractor"
	CompanyTypeConsultant    = "consultant"
	CompanyTypeDeveloper     = "developer"
)

// Company representa una empresa constructora (tenant). Nombre y ubicación bilingües.
type Company struct {
	ID         int64
	Name       string
	NameAr     string
	Type       string
	Location   string
	LocationAr string
	Phone      string
	Email      string
	Website    string
	CreatedAt  time.Time
}
