package reconcile

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
)

// LotInput lote tal como llega del backend, con campos de tipo dinámico.
type LotInput struct {
	LotNumber         string
	SupplierLotCode   string
	Status            string
	LotDate           any
	ManufacturingDate any
	ExpiryDate        any
	Balance           any
	FIFOOrder         any
}

// NormalizeLot convierte un lote crudo a su forma tipada. Fechas inválidas -> nil,
// números inválidos -> 0, estado vacío -> "active", código de lote vacío -> "-".
func NormalizeLot(in LotInput) entity.LotRecord {
	rec := entity.LotRecord{
		LotNumber:         in.LotNumber,
		LotDate:           ParseDate(in.LotDate),
		SupplierLotCode:   in.SupplierLotCode,
		ManufacturingDate: ParseDate(in.ManufacturingDate),
		ExpiryDate:        ParseDate(in.ExpiryDate),
		Balance:           ToDecimal(in.Balance),
		Status:            in.Status,
		FIFOOrder:         ToInt(in.FIFOOrder),
	}
	if strings.TrimSpace(rec.Status) == "" {
		rec.Status = entity.LotStatusActive
	}
	if strings.TrimSpace(rec.SupplierLotCode) == "" {
		rec.SupplierLotCode = entity.LotCodePlaceholder
	}
	return rec
}

// SortFIFO orden de consumo: FIFOOrder asc, luego fecha de lote asc (nil al final), luego número de lote.
func SortFIFO(lots []entity.LotRecord) []entity.LotRecord {
	out := slices.Clone(lots)
	slices.SortStableFunc(out, func(a, b entity.LotRecord) int {
		if c := cmp.Compare(a.FIFOOrder, b.FIFOOrder); c != 0 {
			return c
		}
		switch {
		case a.LotDate != nil && b.LotDate == nil:
			return -1
		case a.LotDate == nil && b.LotDate != nil:
			return 1
		case a.LotDate != nil && b.LotDate != nil:
			if c := a.LotDate.Compare(*b.LotDate); c != 0 {
				return c
			}
		}
		return strings.Compare(a.LotNumber, b.LotNumber)
	})
	return out
}
