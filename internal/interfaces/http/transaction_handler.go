package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/obra-offline/internal/application/dto"
	"github.com/jhoicas/obra-offline/internal/application/usecase"
)

// TransactionHandler movimientos financieros.
type TransactionHandler struct {
	uc *usecase.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// List godoc
// @Summary      Listar transacciones
// @Description  Orden: transactionDate descendente.
// @Tags         transactions
// @Produce      json
// @Param        companyId  query  int  false  "Filtrar por empresa"
// @Param        projectId  query  int  false  "Filtrar por proyecto"
// @Success      200  {array}   dto.TransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	companyID, err := queryInt64(c, "companyId")
	if err != nil {
		return badQuery(c, err)
	}
	projectID, err := queryInt64(c, "projectId")
	if err != nil {
		return badQuery(c, err)
	}
	out, err := h.uc.List(c.Context(), companyID, projectID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar transacción
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Movimiento"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
