package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jortega/inventario-backend/internal/application/dto"
	"github.com/jortega/inventario-backend/internal/domain"
)

// writeError mapea errores de dominio a respuestas HTTP. Ningún fallo se
// traga en silencio: lo que no se reconoce sale como 500 INTERNAL.
func writeError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: verr.Error(),
			Fields:  verr.Fields,
		})
	}
	var iderr *domain.InvalidIDsError
	if errors.As(err, &iderr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_IDS",
			Message: "identificadores inválidos en el lote",
			IDs:     iderr.IDs,
		})
	}
	if errors.Is(err, domain.ErrEmptyBatch) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "EMPTY_BATCH",
			Message: "se espera un arreglo no vacío",
		})
	}
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "DUPLICATE_EMAIL",
			Message: err.Error(),
		})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: err.Error(),
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: message})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
