package reconcile

import (
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
)

// DefaultHistoryCap tope por defecto de los historiales.
const DefaultHistoryCap = 10

// RankKey claves de orden de un registro de historial.
type RankKey struct {
	EffectiveDate *time.Time
	OrderDate     *time.Time
	OrderCode     string
	Sequence      int
}

// Rank ordena por fecha efectiva descendente (nil al final) con desempate:
// fecha de orden desc, código de orden asc, secuencia desc. Luego trunca a limit.
// limit <= 0 usa DefaultHistoryCap. No modifica records.
func Rank[T any](records []T, key func(T) RankKey, limit int) []T {
	if limit <= 0 {
		limit = DefaultHistoryCap
	}
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b T) int {
		return compareKeys(key(a), key(b))
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func compareKeys(a, b RankKey) int {
	if c := compareDesc(a.EffectiveDate, b.EffectiveDate); c != 0 {
		return c
	}
	if c := compareDesc(a.OrderDate, b.OrderDate); c != 0 {
		return c
	}
	if c := strings.Compare(a.OrderCode, b.OrderCode); c != 0 {
		return c
	}
	return b.Sequence - a.Sequence
}

// compareDesc más reciente primero; nil es el valor más antiguo posible.
func compareDesc(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return b.Compare(*a)
}

// ProcurementKey claves de orden de una línea de compra.
func ProcurementKey(p entity.ProcurementHistoryItem) RankKey {
	return RankKey{
		EffectiveDate: p.EffectiveDate,
		OrderDate:     p.OrderDate,
		OrderCode:     p.OrderCode,
		Sequence:      p.ItemSequence,
	}
}

// ProductionKey la marca de tiempo hace de fecha efectiva y de orden; la orden de trabajo desempata.
func ProductionKey(p entity.ProductionHistoryItem) RankKey {
	return RankKey{
		EffectiveDate: p.Timestamp,
		OrderDate:     p.Timestamp,
		OrderCode:     p.WorkOrderCode,
	}
}

// RankProcurement atajo de Rank para historial de compras.
func RankProcurement(items []entity.ProcurementHistoryItem, limit int) []entity.ProcurementHistoryItem {
	return Rank(items, ProcurementKey, limit)
}

// RankProduction atajo de Rank para historial de producción.
func RankProduction(items []entity.ProductionHistoryItem, limit int) []entity.ProductionHistoryItem {
	return Rank(items, ProductionKey, limit)
}
