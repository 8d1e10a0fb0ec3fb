package reconcile_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/reconcile"
)

func codes(items []entity.ProcurementHistoryItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = fmt.Sprintf("%s#%d", it.OrderCode, it.ItemSequence)
	}
	return out
}

func TestRankProcurement_EffectiveDateDescNilLast(t *testing.T) {
	items := []entity.ProcurementHistoryItem{
		{OrderCode: "PO-1", EffectiveDate: day(2024, 1, 1)},
		{OrderCode: "PO-2"},
		{OrderCode: "PO-3", EffectiveDate: day(2024, 3, 1)},
		{OrderCode: "PO-4", EffectiveDate: day(2024, 2, 1)},
	}

	got := reconcile.RankProcurement(items, 10)

	assert.Equal(t, []string{"PO-3#0", "PO-4#0", "PO-1#0", "PO-2#0"}, codes(got))
	assert.Equal(t, "PO-1", items[0].OrderCode, "la entrada no se modifica")
}

func TestRankProcurement_TieBreakChain(t *testing.T) {
	same := day(2024, 5, 5)
	items := []entity.ProcurementHistoryItem{
		{OrderCode: "PO-B", ItemSequence: 1, EffectiveDate: same, OrderDate: day(2024, 1, 1)},
		{OrderCode: "PO-A", ItemSequence: 1, EffectiveDate: same, OrderDate: day(2024, 1, 1)},
		{OrderCode: "PO-A", ItemSequence: 3, EffectiveDate: same, OrderDate: day(2024, 1, 1)},
		{OrderCode: "PO-Z", ItemSequence: 1, EffectiveDate: same, OrderDate: day(2024, 4, 1)},
		{OrderCode: "PO-Y", ItemSequence: 1, EffectiveDate: same},
	}

	got := reconcile.RankProcurement(items, 10)

	// fecha de orden desc (nil al final), luego código asc, luego secuencia desc
	assert.Equal(t, []string{"PO-Z#1", "PO-A#3", "PO-A#1", "PO-B#1", "PO-Y#1"}, codes(got))
}

func TestRankProcurement_SmallerOrderCodeFirstOnEqualDates(t *testing.T) {
	same := day(2024, 5, 5)
	items := []entity.ProcurementHistoryItem{
		{OrderCode: "B", EffectiveDate: same, OrderDate: same},
		{OrderCode: "A", EffectiveDate: same, OrderDate: same},
	}
	got := reconcile.RankProcurement(items, 10)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].OrderCode)
}

func TestRank_Cap(t *testing.T) {
	items := make([]entity.ProcurementHistoryItem, 25)
	for i := range items {
		items[i] = entity.ProcurementHistoryItem{OrderCode: fmt.Sprintf("PO-%02d", i), EffectiveDate: day(2024, 1, i+1)}
	}

	top := reconcile.RankProcurement(items, 10)
	require.Len(t, top, 10)
	assert.Equal(t, "PO-24", top[0].OrderCode)
	for i := 1; i < len(top); i++ {
		assert.False(t, top[i].EffectiveDate.After(*top[i-1].EffectiveDate), "no creciente en fecha")
	}

	assert.Len(t, reconcile.RankProcurement(items, 3), 3)
	assert.Len(t, reconcile.RankProcurement(items, 0), reconcile.DefaultHistoryCap)
	assert.Empty(t, reconcile.RankProcurement(nil, 10))
}

func TestRankProduction(t *testing.T) {
	items := []entity.ProductionHistoryItem{
		{WorkOrderCode: "WO-2", Timestamp: day(2024, 1, 1)},
		{WorkOrderCode: "WO-1", Timestamp: day(2024, 1, 1)},
		{WorkOrderCode: "WO-3", Timestamp: day(2024, 6, 1)},
		{WorkOrderCode: "WO-0"},
	}
	got := reconcile.RankProduction(items, 10)
	require.Len(t, got, 4)
	assert.Equal(t, "WO-3", got[0].WorkOrderCode)
	assert.Equal(t, "WO-1", got[1].WorkOrderCode)
	assert.Equal(t, "WO-2", got[2].WorkOrderCode)
	assert.Equal(t, "WO-0", got[3].WorkOrderCode)
}
