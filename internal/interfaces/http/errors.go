package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-conciliacion/internal/application/dto"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain"
)

// writeError traduce errores de dominio a la respuesta de error de la API.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrLoadInProgress):
		status, code = fiber.StatusConflict, "LOAD_IN_PROGRESS"
	case errors.Is(err, domain.ErrRunInProgress):
		status, code = fiber.StatusConflict, "RUN_IN_PROGRESS"
	case errors.Is(err, domain.ErrResultNotDismissed):
		status, code = fiber.StatusConflict, "RESULT_NOT_DISMISSED"
	case errors.Is(err, domain.ErrNoRun):
		status, code = fiber.StatusNotFound, "NO_RUN"
	case errors.Is(err, domain.ErrBackend):
		status, code = fiber.StatusBadGateway, "BACKEND"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
