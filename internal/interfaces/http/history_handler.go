package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-conciliacion/internal/application/dto"
	"github.com/jhoicas/Inventario-conciliacion/internal/application/history"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
)

// HistoryHandler expone los historiales de un material (protegido).
type HistoryHandler struct {
	uc *history.UseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *history.UseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// materialFromRequest :id es la clave autoritativa; ?code= aporta el código cuando difiere del id.
func materialFromRequest(c *fiber.Ctx) entity.MaterialRef {
	return entity.MaterialRef{ID: c.Params("id"), Code: c.Query("code")}
}

// paginate aplica limit/offset sobre una lista ya ordenada y acotada.
func paginate[T any](c *fiber.Ctx, items []T) ([]T, dto.PageResponse, error) {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return nil, dto.PageResponse{}, err
	}
	page.DefaultPage()
	total := len(items)
	start := min(page.Offset, total)
	end := start + min(page.Limit, total-start)
	return items[start:end], dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total}, nil
}

// Procurement godoc
// @Summary      Historial de compras de un material
// @Description  Líneas de orden del material, ordenadas por fecha efectiva (entrega real, esperada u orden).
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del material"
// @Param        code    query  string  false  "Código del material"
// @Param        limit   query  int     false  "Límite (máx. 100)"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.ProcurementListResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/procurement-history [get]
func (h *HistoryHandler) Procurement(c *fiber.Ctx) error {
	m := materialFromRequest(c)
	items, err := h.uc.Procurement.Load(c.UserContext(), m)
	if err != nil {
		return writeError(c, err)
	}
	out, page, err := paginate(c, dto.ProcurementItemsFromEntity(items))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "limit/offset inválidos"})
	}
	return c.JSON(dto.ProcurementListResponse{Material: dto.NewMaterialResponse(m), Items: out, Page: page})
}

// Production godoc
// @Summary      Historial de producción de un material
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del material"
// @Param        code    query  string  false  "Código del material"
// @Success      200     {object}  dto.ProductionListResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/production-history [get]
func (h *HistoryHandler) Production(c *fiber.Ctx) error {
	m := materialFromRequest(c)
	items, err := h.uc.Production.Load(c.UserContext(), m)
	if err != nil {
		return writeError(c, err)
	}
	out, page, err := paginate(c, dto.ProductionItemsFromEntity(items))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "limit/offset inválidos"})
	}
	return c.JSON(dto.ProductionListResponse{Material: dto.NewMaterialResponse(m), Items: out, Page: page})
}

// Lots godoc
// @Summary      Lotes de un material en orden FIFO
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del material"
// @Param        code    query  string  false  "Código del material"
// @Success      200     {object}  dto.LotListResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/lots [get]
func (h *HistoryHandler) Lots(c *fiber.Ctx) error {
	m := materialFromRequest(c)
	lots, err := h.uc.Lots.Load(c.UserContext(), m)
	if err != nil {
		return writeError(c, err)
	}
	out, page, err := paginate(c, dto.LotsFromEntity(lots))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "limit/offset inválidos"})
	}
	return c.JSON(dto.LotListResponse{Material: dto.NewMaterialResponse(m), Items: out, Page: page})
}

// Report godoc
// @Summary      Informe combinado de un material
// @Description  Carga compras, producción y lotes a la vez. Un canal fallido aparece en errors; si fallan los tres responde 502.
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del material"
// @Param        code    query  string  false  "Código del material"
// @Success      200     {object}  dto.MaterialReportResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/report [get]
func (h *HistoryHandler) Report(c *fiber.Ctx) error {
	m := materialFromRequest(c)
	rep, err := h.uc.Report(c.UserContext(), m)
	if err != nil && len(rep.Errors) == 3 {
		return writeError(c, err)
	}
	return c.JSON(dto.MaterialReportResponse{
		Material:    dto.NewMaterialResponse(m),
		Procurement: dto.ProcurementItemsFromEntity(rep.Procurement),
		Production:  dto.ProductionItemsFromEntity(rep.Production),
		Lots:        dto.LotsFromEntity(rep.Lots),
		Summary:     dto.CurrencySummariesFromDomain(rep.Summary),
		Errors:      rep.Errors,
	})
}
