package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/obra-offline/internal/application/dto"
	"github.com/jhoicas/obra-offline/internal/application/usecase"
)

// ProjectHandler maneja las peticiones HTTP para proyectos.
type ProjectHandler struct {
	uc *usecase.ProjectUseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// List godoc
// @Summary      Listar proyectos
// @Description  Los filtros se combinan con AND.
// @Tags         projects
// @Produce      json
// @Param        companyId  query  int     false  "Filtrar por empresa"
// @Param        status     query  string  false  "planning, active, completed, cancelled, on_hold"
// @Success      200  {array}   dto.ProjectResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	companyID, err := queryInt64(c, "companyId")
	if err != nil {
		return badQuery(c, err)
	}
	out, err := h.uc.List(c.Context(), companyID, queryString(c, "status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener proyecto por ID
// @Tags         projects
// @Produce      json
// @Param        id   path  int  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badQuery(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear proyecto
// @Description  Responde con la fila canónica releída de la base.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProjectRequest  true  "Datos del proyecto"
// @Success      201   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
