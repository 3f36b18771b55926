package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/obra-offline/internal/application/dto"
	"github.com/jhoicas/obra-offline/internal/domain"
)

// Códigos de ErrorResponse.
const (
	CodeValidation   = "VALIDATION"
	CodeInvalidBody  = "INVALID_BODY"
	CodeInvalidQuery = "INVALID_QUERY"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL"
)

// respondError traduce errores de dominio a HTTP:
//   - ValidationError → 400 con el campo
//   - NotFoundError   → 404
//   - cualquier otro  → 500 (se registra; el proceso sigue vivo)
func respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: CodeValidation, Message: verr.Error(), Field: verr.Field,
		})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: CodeNotFound, Message: err.Error(),
		})
	}

	log := requestLogger(c)
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno atendiendo la petición")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: CodeInternal, Message: "error interno del servidor",
	})
}

// ErrorHandler maneja los errores que escapan de los handlers (rutas
// inexistentes, panics recuperados) con el mismo cuerpo JSON.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			code = ferr.Code
		}
		body := dto.ErrorResponse{Code: CodeInternal, Message: "error interno del servidor"}
		switch {
		case code == fiber.StatusNotFound:
			body = dto.ErrorResponse{Code: CodeNotFound, Message: "ruta no encontrada"}
		case code < fiber.StatusInternalServerError:
			body = dto.ErrorResponse{Code: CodeInvalidBody, Message: err.Error()}
		default:
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		}
		return c.Status(code).JSON(body)
	}
}
