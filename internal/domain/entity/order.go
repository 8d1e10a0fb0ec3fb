package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order orden de compra ya normalizada desde GET /api/orders.
type Order struct {
	ID           string
	Code         string
	SupplierName string
	OrderDate    *time.Time
	Items        []OrderItem
}

// OrderItem línea de una orden. Los campos de identidad se comparan en orden de prioridad
// (MaterialID, MaterialCode, ItemCode, LineID).
type OrderItem struct {
	Sequence             int
	MaterialID           string
	MaterialCode         string
	ItemCode             string
	LineID               string
	Quantity             decimal.Decimal
	UnitPrice            decimal.Decimal
	Currency             string
	ItemStatus           string
	ActualDeliveryDate   *time.Time
	ExpectedDeliveryDate *time.Time
}
