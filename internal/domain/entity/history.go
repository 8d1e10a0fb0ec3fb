package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcurementHistoryItem instantánea derivada de una línea de orden. Se recalcula en cada carga.
type ProcurementHistoryItem struct {
	OrderID              string
	OrderCode            string
	ItemSequence         int
	SupplierName         string
	Quantity             decimal.Decimal
	UnitPrice            decimal.Decimal
	Currency             string
	ItemStatus           string
	ActualDeliveryDate   *time.Time
	ExpectedDeliveryDate *time.Time
	OrderDate            *time.Time
	EffectiveDate        *time.Time
}

// Total cantidad × precio unitario.
func (p ProcurementHistoryItem) Total() decimal.Decimal {
	return p.Quantity.Mul(p.UnitPrice)
}

// MovementCategory categoría gruesa usada para agrupar movimientos en pantalla.
type MovementCategory string

const (
	CategoryProduction    MovementCategory = "production"
	CategoryConsumption   MovementCategory = "consumption"
	CategoryScrap         MovementCategory = "scrap"
	CategoryWIP           MovementCategory = "wip"
	CategoryAdjustmentIn  MovementCategory = "adjustment_in"
	CategoryAdjustmentOut MovementCategory = "adjustment_out"
	CategoryOrder         MovementCategory = "order"
	CategoryStockIn       MovementCategory = "stock_in"
	CategoryStockOut      MovementCategory = "stock_out"
	CategoryOther         MovementCategory = "other"
)

// ProductionHistoryItem derivado de un movimiento de stock ligado a producción.
type ProductionHistoryItem struct {
	Timestamp     *time.Time
	WorkOrderCode string
	Quantity      decimal.Decimal
	Category      MovementCategory
	Status        string
	Notes         string
}
