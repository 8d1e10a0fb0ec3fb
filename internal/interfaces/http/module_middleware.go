package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-conciliacion/internal/application/dto"
)

// Funcionalidades que dependen de la fuente configurada.
const (
	FeatureBulkDelete = "bulk_delete"
)

// RequireFeature corta la petición cuando la funcionalidad no está disponible con la
// fuente actual (p. ej. la fuente Postgres es de solo lectura y no admite borrados).
//
// Comportamiento:
//   - 503 Service Unavailable → funcionalidad deshabilitada.
//   - Si está habilitada, continúa la cadena.
func RequireFeature(feature string, enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "FEATURE_DISABLED",
				Message: "la funcionalidad '" + feature + "' no está disponible con la fuente configurada",
			})
		}
		return c.Next()
	}
}
