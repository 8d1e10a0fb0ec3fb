package dto

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/reconcile"
)

// Formas tal como las devuelve el backend de registro. Los campos con tipo `any` pueden llegar
// como número, cadena o null; se normalizan una sola vez con los métodos ToEntity.

// OrdersResponse GET /api/orders.
type OrdersResponse struct {
	Orders []RawOrder `json:"orders"`
}

// RawOrder orden cruda.
type RawOrder struct {
	ID           any            `json:"id"`
	OrderID      any            `json:"orderId"`
	OrderCode    string         `json:"orderCode"`
	Code         string         `json:"code"`
	OrderDate    any            `json:"orderDate"`
	SupplierName string         `json:"supplierName"`
	Supplier     *RawSupplier   `json:"supplier,omitempty"`
	Items        []RawOrderItem `json:"items"`
}

// RawOrderItem línea de orden cruda.
type RawOrderItem struct {
	MaterialID           any    `json:"materialId"`
	MaterialCode         any    `json:"materialCode"`
	ItemCode             any    `json:"itemCode"`
	LineID               any    `json:"lineId"`
	ItemSequence         any    `json:"itemSequence"`
	Quantity             any    `json:"quantity"`
	UnitPrice            any    `json:"unitPrice"`
	Currency             string `json:"currency"`
	ItemStatus           string `json:"itemStatus"`
	ActualDeliveryDate   any    `json:"actualDeliveryDate"`
	ExpectedDeliveryDate any    `json:"expectedDeliveryDate"`
}

// ToEntity normaliza la orden. La secuencia de línea cae a su posición (1..n) si no viene.
func (o RawOrder) ToEntity() entity.Order {
	out := entity.Order{
		ID:           firstString(o.ID, o.OrderID),
		Code:         firstString(o.OrderCode, o.Code),
		SupplierName: o.SupplierName,
		OrderDate:    reconcile.ParseDate(o.OrderDate),
		Items:        make([]entity.OrderItem, 0, len(o.Items)),
	}
	if out.SupplierName == "" && o.Supplier != nil {
		out.SupplierName = o.Supplier.DisplayName()
	}
	for i, it := range o.Items {
		seq := reconcile.ToInt(it.ItemSequence)
		if seq == 0 {
			seq = i + 1
		}
		out.Items = append(out.Items, entity.OrderItem{
			Sequence:             seq,
			MaterialID:           str(it.MaterialID),
			MaterialCode:         str(it.MaterialCode),
			ItemCode:             str(it.ItemCode),
			LineID:               str(it.LineID),
			Quantity:             reconcile.ToDecimal(it.Quantity),
			UnitPrice:            reconcile.ToDecimal(it.UnitPrice),
			Currency:             it.Currency,
			ItemStatus:           it.ItemStatus,
			ActualDeliveryDate:   reconcile.ParseDate(it.ActualDeliveryDate),
			ExpectedDeliveryDate: reconcile.ParseDate(it.ExpectedDeliveryDate),
		})
	}
	return out
}

// MovementsResponse GET /api/stockMovements?materialCode=.
type MovementsResponse struct {
	Movements []RawMovement `json:"movements"`
}

// RawMovement movimiento de stock crudo.
type RawMovement struct {
	ID            any    `json:"id"`
	MaterialCode  any    `json:"materialCode"`
	Type          string `json:"type"`
	SubType       string `json:"subType"`
	Status        string `json:"status"`
	AssignmentID  any    `json:"assignmentId"`
	WorkOrderCode string `json:"workOrderCode"`
	Quantity      any    `json:"quantity"`
	MovementDate  any    `json:"movementDate"`
	CreatedAt     any    `json:"createdAt"`
	Notes         string `json:"notes"`
}

// ToEntity normaliza el movimiento; la fecha es movementDate o, si no se interpreta, createdAt.
func (m RawMovement) ToEntity() entity.StockMovement {
	date := reconcile.ParseDate(m.MovementDate)
	if date == nil {
		date = reconcile.ParseDate(m.CreatedAt)
	}
	return entity.StockMovement{
		ID:            str(m.ID),
		MaterialCode:  str(m.MaterialCode),
		Type:          m.Type,
		SubType:       m.SubType,
		Status:        m.Status,
		AssignmentID:  str(m.AssignmentID),
		WorkOrderCode: m.WorkOrderCode,
		Quantity:      reconcile.ToDecimal(m.Quantity),
		MovementDate:  date,
		Notes:         m.Notes,
	}
}

// LotsResponse GET /api/materials/{code}/lots.
type LotsResponse struct {
	Lots []RawLot `json:"lots"`
}

// RawLot lote crudo; balance puede venir como "quantity".
type RawLot struct {
	LotNumber         string `json:"lotNumber"`
	LotDate           any    `json:"lotDate"`
	SupplierLotCode   string `json:"supplierLotCode"`
	ManufacturingDate any    `json:"manufacturingDate"`
	ExpiryDate        any    `json:"expiryDate"`
	Balance           any    `json:"balance"`
	Quantity          any    `json:"quantity"`
	Status            string `json:"status"`
	FIFOOrder         any    `json:"fifoOrder"`
}

// ToLotInput entrega el lote al normalizador de lotes sin interpretar sus valores.
func (l RawLot) ToLotInput() reconcile.LotInput {
	balance := l.Balance
	if balance == nil {
		balance = l.Quantity
	}
	return reconcile.LotInput{
		LotNumber:         l.LotNumber,
		SupplierLotCode:   l.SupplierLotCode,
		Status:            l.Status,
		LotDate:           l.LotDate,
		ManufacturingDate: l.ManufacturingDate,
		ExpiryDate:        l.ExpiryDate,
		Balance:           balance,
		FIFOOrder:         l.FIFOOrder,
	}
}

// SupplierResponse GET /api/suppliers/{id}.
type SupplierResponse struct {
	Supplier RawSupplier `json:"supplier"`
}

// RawSupplier proveedor crudo; el nombre puede venir como name o companyName.
type RawSupplier struct {
	ID                any                   `json:"id"`
	Name              string                `json:"name"`
	CompanyName       string                `json:"companyName"`
	Phone             string                `json:"phone"`
	Email             string                `json:"email"`
	Status            string                `json:"status"`
	SuppliedMaterials []RawSuppliedMaterial `json:"suppliedMaterials"`
}

// DisplayName name, o companyName si name está vacío.
func (s RawSupplier) DisplayName() string {
	if strings.TrimSpace(s.Name) != "" {
		return s.Name
	}
	return s.CompanyName
}

// RawSuppliedMaterial vínculo proveedor-material crudo.
type RawSuppliedMaterial struct {
	ID              any    `json:"id"`
	MaterialID      any    `json:"materialId"`
	Code            string `json:"code"`
	MaterialCode    string `json:"materialCode"`
	Name            string `json:"name"`
	MaterialName    string `json:"materialName"`
	Unit            string `json:"unit"`
	Status          string `json:"status"`
	StatusUpdatedAt any    `json:"statusUpdatedAt"`
}

// ToEntity normaliza el proveedor con sus vínculos.
func (s RawSupplier) ToEntity() entity.SupplierRef {
	out := entity.SupplierRef{
		ID:     str(s.ID),
		Name:   s.DisplayName(),
		Phone:  s.Phone,
		Email:  s.Email,
		Status: s.Status,
	}
	for _, m := range s.SuppliedMaterials {
		out.SuppliedMaterials = append(out.SuppliedMaterials, entity.SuppliedMaterialLink{
			MaterialID:      firstString(m.MaterialID, m.ID),
			MaterialCode:    firstString(m.MaterialCode, m.Code),
			MaterialName:    firstString(m.MaterialName, m.Name),
			Unit:            m.Unit,
			Status:          m.Status,
			StatusUpdatedAt: reconcile.ParseDate(m.StatusUpdatedAt),
		})
	}
	return out
}

// MaterialsResponse GET /api/materials.
type MaterialsResponse struct {
	Materials []RawMaterial `json:"materials"`
}

// RawMaterial material crudo.
type RawMaterial struct {
	ID     any    `json:"id"`
	Code   any    `json:"code"`
	Name   string `json:"name"`
	Unit   string `json:"unit"`
	Status string `json:"status"`
}

// ToEntity normaliza el material.
func (m RawMaterial) ToEntity() entity.MaterialRef {
	return entity.MaterialRef{ID: str(m.ID), Code: str(m.Code), Name: m.Name, Unit: m.Unit, Status: m.Status}
}

// Acciones de DELETE /api/materials/{id}.
const (
	DeleteActionDeleted        = "deleted"
	DeleteActionAlreadyRemoved = "already_removed"
)

// DeleteMaterialResponse respuesta de DELETE /api/materials/{id}.
type DeleteMaterialResponse struct {
	Action  string `json:"action"`
	Message string `json:"message"`
}

// str convierte identificadores numéricos o textuales a cadena; null -> "".
func str(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case json.Number:
		return n.String()
	}
	return cast.ToString(v)
}

func firstString(vals ...any) string {
	for _, v := range vals {
		if s := str(v); s != "" {
			return s
		}
	}
	return ""
}
