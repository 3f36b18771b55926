package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/obra-offline/internal/application/dto"
)

// APIVersion versión del contrato REST.
const APIVersion = "v1"

// ServerName identificador que aparece en health y version.
const ServerName = "embedded-offline"

// SystemInfo datos estáticos para /api/version.
type SystemInfo struct {
	Version  string
	Build    string
	Database string
}

// SystemHandler health check, versión y sincronización.
type SystemHandler struct {
	running func() bool
	info    SystemInfo
	now     func() time.Time
}

// NewSystemHandler construye el handler. running indica si el servidor está en estado Running.
func NewSystemHandler(running func() bool, info SystemInfo) *SystemHandler {
	if running == nil {
		running = func() bool { return true }
	}
	return &SystemHandler{running: running, info: info, now: time.Now}
}

// Health godoc
// @Summary      Estado del servidor embebido
// @Description  Siempre responde 200; status=healthy solo si el servidor está Running.
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	status := dto.HealthStatusUnhealthy
	if h.running() {
		status = dto.HealthStatusHealthy
	}
	return c.JSON(dto.HealthResponse{
		Status:    status,
		Server:    ServerName,
		Timestamp: h.now().UTC(),
		Offline:   true,
	})
}

// Version godoc
// @Summary      Versión del servidor
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.VersionResponse
// @Router       /api/version [get]
func (h *SystemHandler) Version(c *fiber.Ctx) error {
	return c.JSON(dto.VersionResponse{
		Version:    h.info.Version,
		Build:      h.info.Build,
		APIVersion: APIVersion,
		Server:     ServerName,
		Database:   h.info.Database,
		Offline:    true,
	})
}

// SyncChanges godoc
// @Summary      Cambios pendientes de sincronizar
// @Description  Sin conexión no hay cambios remotos: siempre devuelve [].
// @Tags         system
// @Produce      json
// @Success      200  {array}  object
// @Router       /api/sync/changes [get]
func (h *SystemHandler) SyncChanges(c *fiber.Ctx) error {
	return c.JSON([]any{})
}
