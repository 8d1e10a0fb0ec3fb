package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"
	MovementTypeOut = "out"
)

// Subtipos de movimiento relevantes para la conciliación.
const (
	SubTypeProduction                  = "production"
	SubTypeProductionOutput            = "production_output"
	SubTypeProductionOutputNewMaterial = "production_output_new_material"
	SubTypeScrap                       = "scrap"
	SubTypeProductionScrap             = "production_scrap"
	SubTypeProductionConsumption       = "production_consumption"
	SubTypeWIPReservation              = "wip_reservation"
	SubTypeAdjustment                  = "adjustment"
	SubTypeOrderDelivery               = "order_delivery"
)

// StockMovement movimiento de stock normalizado desde GET /api/stockMovements.
type StockMovement struct {
	ID            string
	MaterialCode  string
	Type          string // in | out
	SubType       string
	Status        string
	AssignmentID  string // vínculo con una asignación de producción; vacío = sin vínculo
	WorkOrderCode string
	Quantity      decimal.Decimal
	MovementDate  *time.Time // movementDate, o createdAt si falta
	Notes         string
}
