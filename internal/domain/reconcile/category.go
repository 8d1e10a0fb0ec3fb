package reconcile

import "github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"

// productionSubTypes subtipos que habilitan la entrada al historial de producción.
var productionSubTypes = map[string]struct{}{
	entity.SubTypeProduction:                  {},
	entity.SubTypeProductionOutput:            {},
	entity.SubTypeProductionOutputNewMaterial: {},
	entity.SubTypeProductionConsumption:       {},
	entity.SubTypeProductionScrap:             {},
	entity.SubTypeScrap:                       {},
	entity.SubTypeWIPReservation:              {},
}

// Categorize proyecta subType/status/type a una categoría gruesa. Primera regla que coincide gana.
func Categorize(m entity.StockMovement) entity.MovementCategory {
	switch {
	case m.SubType == entity.SubTypeProduction,
		m.SubType == entity.SubTypeProductionOutput,
		m.SubType == entity.SubTypeProductionOutputNewMaterial:
		return entity.CategoryProduction
	case m.SubType == entity.SubTypeScrap, m.SubType == entity.SubTypeProductionScrap:
		return entity.CategoryScrap
	case m.SubType == entity.SubTypeProductionConsumption, m.Status == "consumption":
		return entity.CategoryConsumption
	case m.SubType == entity.SubTypeWIPReservation, m.Status == "wip":
		return entity.CategoryWIP
	case m.SubType == entity.SubTypeAdjustment && m.Type == entity.MovementTypeIn:
		return entity.CategoryAdjustmentIn
	case m.SubType == entity.SubTypeAdjustment && m.Type == entity.MovementTypeOut:
		return entity.CategoryAdjustmentOut
	case m.SubType == entity.SubTypeOrderDelivery:
		return entity.CategoryOrder
	case m.Type == entity.MovementTypeIn:
		return entity.CategoryStockIn
	case m.Type == entity.MovementTypeOut:
		return entity.CategoryStockOut
	}
	return entity.CategoryOther
}

// IsProductionRelated filtro previo: requiere vínculo de asignación y subtipo de producción.
// Lo que no pasa se descarta, no se clasifica como "other".
func IsProductionRelated(m entity.StockMovement) bool {
	if m.AssignmentID == "" {
		return false
	}
	_, ok := productionSubTypes[m.SubType]
	return ok
}

// ProjectProduction filtra y proyecta un movimiento a su vista de historial de producción.
func ProjectProduction(m entity.StockMovement) (entity.ProductionHistoryItem, bool) {
	if !IsProductionRelated(m) {
		return entity.ProductionHistoryItem{}, false
	}
	return entity.ProductionHistoryItem{
		Timestamp:     ProductionEffectiveDate(m),
		WorkOrderCode: m.WorkOrderCode,
		Quantity:      m.Quantity,
		Category:      Categorize(m),
		Status:        m.Status,
		Notes:         m.Notes,
	}, true
}
