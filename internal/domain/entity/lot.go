package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto de la normalización de lotes.
const (
	LotStatusActive    = "active"
	LotCodePlaceholder = "-"
)

// LotRecord lote de inventario normalizado. FIFOOrder menor = se consume primero.
type LotRecord struct {
	LotNumber         string
	LotDate           *time.Time
	SupplierLotCode   string
	ManufacturingDate *time.Time
	ExpiryDate        *time.Time
	Balance           decimal.Decimal
	Status            string
	FIFOOrder         int
}
