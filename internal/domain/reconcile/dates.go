package reconcile

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
)

// maxEpochMillis rango válido de una fecha expresada en milisegundos desde epoch (±100.000.000 días).
const maxEpochMillis = 8.64e15

// ParseDate convierte representaciones heterogéneas de fecha en un instante, o nil.
// Acepta time.Time, números (milisegundos desde epoch) y cadenas con forma de fecha.
// Nunca entra en pánico: cualquier entrada no interpretable devuelve nil.
func ParseDate(v any) (out *time.Time) {
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()

	switch d := v.(type) {
	case nil:
		return nil
	case time.Time:
		return timePtr(d)
	case *time.Time:
		if d == nil {
			return nil
		}
		return timePtr(*d)
	case float64:
		return fromEpochMillis(d)
	case float32:
		return fromEpochMillis(float64(d))
	case int:
		return fromEpochMillis(float64(d))
	case int64:
		return fromEpochMillis(float64(d))
	case int32:
		return fromEpochMillis(float64(d))
	case json.Number:
		f, err := d.Float64()
		if err != nil {
			return nil
		}
		return fromEpochMillis(f)
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return nil
		}
		t, err := dateparse.ParseIn(s, time.UTC)
		if err != nil {
			return nil
		}
		return timePtr(t)
	}
	return nil
}

func fromEpochMillis(ms float64) *time.Time {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxEpochMillis {
		return nil
	}
	t := time.UnixMilli(int64(ms)).UTC()
	return &t
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// ProcurementEffectiveDate fecha de ranking de una línea de compra:
// entrega real si el estado es exactamente deliveredLabel y hay fecha; si no la esperada; si no la de la orden.
func ProcurementEffectiveDate(item entity.ProcurementHistoryItem, deliveredLabel string) *time.Time {
	if item.ItemStatus == deliveredLabel && item.ActualDeliveryDate != nil {
		return item.ActualDeliveryDate
	}
	if item.ExpectedDeliveryDate != nil {
		return item.ExpectedDeliveryDate
	}
	return item.OrderDate
}

// ProductionEffectiveDate los movimientos usan su marca de tiempo tal cual.
func ProductionEffectiveDate(m entity.StockMovement) *time.Time {
	return m.MovementDate
}
