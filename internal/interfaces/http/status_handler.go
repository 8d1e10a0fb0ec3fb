package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-conciliacion/internal/application/dto"
	"github.com/jhoicas/Inventario-conciliacion/internal/application/status"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
)

// StatusHandler estados efectivos por proveedor (protegido).
type StatusHandler struct {
	uc *status.UseCase
}

// NewStatusHandler construye el handler.
func NewStatusHandler(uc *status.UseCase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

// SupplierMaterialStatuses godoc
// @Summary      Estados efectivos de los materiales de un proveedor
// @Description  Combina estado del vínculo, del proveedor y del material según la política configurada.
// @Tags         status
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.SupplierStatusesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/material-statuses [get]
func (h *StatusHandler) SupplierMaterialStatuses(c *fiber.Ctx) error {
	out, err := h.uc.SupplierMaterialStatuses(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SupplierStatusesFromUseCase(out))
}

// MaterialStatus godoc
// @Summary      Estado efectivo de un material para un proveedor
// @Description  Si el proveedor no suministra el material se resuelve sin vínculo.
// @Tags         status
// @Security     Bearer
// @Produce      json
// @Param        id           path   string  true   "ID del proveedor"
// @Param        materialId   path   string  true   "ID del material"
// @Param        code         query  string  false  "Código del material"
// @Success      200  {object}  dto.MaterialStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/materials/{materialId}/status [get]
func (h *StatusHandler) MaterialStatus(c *fiber.Ctx) error {
	m := entity.MaterialRef{ID: c.Params("materialId"), Code: c.Query("code")}
	out, err := h.uc.MaterialStatus(c.UserContext(), c.Params("id"), m)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MaterialStatusFromUseCase(out))
}
