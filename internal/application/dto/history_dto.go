package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/reconcile"
)

// MaterialResponse identidad del material consultado.
type MaterialResponse struct {
	ID   string `json:"id"`
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

// ProcurementItemResponse línea de compra con su fecha efectiva y total.
type ProcurementItemResponse struct {
	OrderID              string          `json:"order_id"`
	OrderCode            string          `json:"order_code"`
	ItemSequence         int             `json:"item_sequence"`
	SupplierName         string          `json:"supplier_name"`
	Quantity             decimal.Decimal `json:"quantity"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	Total                decimal.Decimal `json:"total"`
	Currency             string          `json:"currency"`
	ItemStatus           string          `json:"item_status"`
	ActualDeliveryDate   *time.Time      `json:"actual_delivery_date"`
	ExpectedDeliveryDate *time.Time      `json:"expected_delivery_date"`
	OrderDate            *time.Time      `json:"order_date"`
	EffectiveDate        *time.Time      `json:"effective_date"`
}

// ProductionItemResponse movimiento de producción categorizado.
type ProductionItemResponse struct {
	Timestamp     *time.Time      `json:"timestamp"`
	WorkOrderCode string          `json:"work_order_code"`
	Quantity      decimal.Decimal `json:"quantity"`
	Category      string          `json:"category"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes"`
}

// LotResponse lote normalizado.
type LotResponse struct {
	LotNumber         string          `json:"lot_number"`
	LotDate           *time.Time      `json:"lot_date"`
	SupplierLotCode   string          `json:"supplier_lot_code"`
	ManufacturingDate *time.Time      `json:"manufacturing_date"`
	ExpiryDate        *time.Time      `json:"expiry_date"`
	Balance           decimal.Decimal `json:"balance"`
	Status            string          `json:"status"`
	FIFOOrder         int             `json:"fifo_order"`
}

// ProcurementListResponse historial de compras.
type ProcurementListResponse struct {
	Material MaterialResponse          `json:"material"`
	Items    []ProcurementItemResponse `json:"items"`
	Page     PageResponse              `json:"page"`
}

// ProductionListResponse historial de producción.
type ProductionListResponse struct {
	Material MaterialResponse         `json:"material"`
	Items    []ProductionItemResponse `json:"items"`
	Page     PageResponse             `json:"page"`
}

// LotListResponse lotes en orden FIFO.
type LotListResponse struct {
	Material MaterialResponse `json:"material"`
	Items    []LotResponse    `json:"items"`
	Page     PageResponse     `json:"page"`
}

// CurrencySummaryResponse agregado de compras en una moneda.
type CurrencySummaryResponse struct {
	Currency         string          `json:"currency"`
	Lines            int             `json:"lines"`
	TotalQuantity    decimal.Decimal `json:"total_quantity"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	AverageUnitPrice decimal.Decimal `json:"average_unit_price"`
}

// MaterialReportResponse los tres historiales de un material; Errors por canal fallido.
type MaterialReportResponse struct {
	Material    MaterialResponse          `json:"material"`
	Procurement []ProcurementItemResponse `json:"procurement"`
	Production  []ProductionItemResponse  `json:"production"`
	Lots        []LotResponse             `json:"lots"`
	Summary     []CurrencySummaryResponse `json:"summary"`
	Errors      map[string]string         `json:"errors,omitempty"`
}

// NewMaterialResponse identidad pública del material.
func NewMaterialResponse(m entity.MaterialRef) MaterialResponse {
	return MaterialResponse{ID: m.Key(), Code: m.Code, Name: m.Name}
}

// ProcurementItemsFromEntity proyecta las líneas de compra.
func ProcurementItemsFromEntity(items []entity.ProcurementHistoryItem) []ProcurementItemResponse {
	out := make([]ProcurementItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ProcurementItemResponse{
			OrderID:              it.OrderID,
			OrderCode:            it.OrderCode,
			ItemSequence:         it.ItemSequence,
			SupplierName:         it.SupplierName,
			Quantity:             it.Quantity,
			UnitPrice:            it.UnitPrice,
			Total:                it.Total(),
			Currency:             it.Currency,
			ItemStatus:           it.ItemStatus,
			ActualDeliveryDate:   it.ActualDeliveryDate,
			ExpectedDeliveryDate: it.ExpectedDeliveryDate,
			OrderDate:            it.OrderDate,
			EffectiveDate:        it.EffectiveDate,
		})
	}
	return out
}

// ProductionItemsFromEntity proyecta los movimientos de producción.
func ProductionItemsFromEntity(items []entity.ProductionHistoryItem) []ProductionItemResponse {
	out := make([]ProductionItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ProductionItemResponse{
			Timestamp:     it.Timestamp,
			WorkOrderCode: it.WorkOrderCode,
			Quantity:      it.Quantity,
			Category:      string(it.Category),
			Status:        it.Status,
			Notes:         it.Notes,
		})
	}
	return out
}

// LotsFromEntity proyecta los lotes.
func LotsFromEntity(lots []entity.LotRecord) []LotResponse {
	out := make([]LotResponse, 0, len(lots))
	for _, l := range lots {
		out = append(out, LotResponse{
			LotNumber:         l.LotNumber,
			LotDate:           l.LotDate,
			SupplierLotCode:   l.SupplierLotCode,
			ManufacturingDate: l.ManufacturingDate,
			ExpiryDate:        l.ExpiryDate,
			Balance:           l.Balance,
			Status:            l.Status,
			FIFOOrder:         l.FIFOOrder,
		})
	}
	return out
}

// CurrencySummariesFromDomain proyecta los agregados por moneda.
func CurrencySummariesFromDomain(sums []reconcile.CurrencySummary) []CurrencySummaryResponse {
	out := make([]CurrencySummaryResponse, 0, len(sums))
	for _, s := range sums {
		out = append(out, CurrencySummaryResponse{
			Currency:         s.Currency,
			Lines:            s.Lines,
			TotalQuantity:    s.TotalQuantity,
			TotalAmount:      s.TotalAmount,
			AverageUnitPrice: s.AverageUnitPrice,
		})
	}
	return out
}
