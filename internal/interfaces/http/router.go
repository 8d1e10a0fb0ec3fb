package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	History   *HistoryHandler
	Status    *StatusHandler
	Bulk      *BulkHandler // nil si la fuente no admite mutaciones
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Historiales por material
	materials := protected.Group("/materials")
	materials.Get("/:id/procurement-history", deps.History.Procurement)
	materials.Get("/:id/production-history", deps.History.Production)
	materials.Get("/:id/lots", deps.History.Lots)
	materials.Get("/:id/report", deps.History.Report)

	// Estados efectivos
	suppliers := protected.Group("/suppliers")
	suppliers.Get("/:id/material-statuses", deps.Status.SupplierMaterialStatuses)
	suppliers.Get("/:id/materials/:materialId/status", deps.Status.MaterialStatus)

	// Operaciones masivas (mutaciones con alcance de escritura)
	bulkGroup := protected.Group("/bulk", RequireFeature(FeatureBulkDelete, deps.Bulk != nil))
	if deps.Bulk == nil {
		return
	}
	bulkGroup.Get("/progress", deps.Bulk.Progress)
	bulkGroup.Get("/events", deps.Bulk.Events)
	bulkGroup.Post("/materials/delete", RequireWrite(), deps.Bulk.DeleteMaterials)
	bulkGroup.Post("/cancel", RequireWrite(), deps.Bulk.Cancel)
	bulkGroup.Post("/dismiss", RequireWrite(), deps.Bulk.Dismiss)
}
