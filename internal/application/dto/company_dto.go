package dto

import "time"

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	NameAr     string    `json:"nameAr"`
	Type       string    `json:"type"`
	Location   string    `json:"location"`
	LocationAr string    `json:"locationAr"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Website    string    `json:"website"`
	CreatedAt  time.Time `json:"createdAt"`
}
