package dto

import "time"

// Valores de HealthResponse.Status.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// HealthResponse respuesta de GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Server    string    `json:"server"`
	Timestamp time.Time `json:"timestamp"`
	Offline   bool      `json:"offline"`
}

// VersionResponse respuesta de GET /api/version.
type VersionResponse struct {
	Version    string `json:"version"`
	Build      string `json:"build"`
	APIVersion string `json:"apiVersion"`
	Server     string `json:"server"`
	Database   string `json:"database"`
	Offline    bool   `json:"offline"`
}
