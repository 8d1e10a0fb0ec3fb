package reconcile_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/reconcile"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestParseDate_Valid(t *testing.T) {
	want := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	cases := map[string]any{
		"time.Time":    want,
		"puntero":      &want,
		"iso fecha":    "2024-01-10",
		"iso completo": "2024-01-10T00:00:00Z",
		"epoch float":  float64(want.UnixMilli()),
		"epoch int64":  want.UnixMilli(),
		"json.Number":  json.Number("1704844800000"),
		"con espacios": "  2024-01-10 ",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			got := reconcile.ParseDate(in)
			require.NotNil(t, got)
			assert.True(t, want.Equal(*got), "got %s", got)
		})
	}
}

func TestParseDate_InvalidReturnsNil(t *testing.T) {
	var nilTime *time.Time
	inputs := []any{
		nil, "", "   ", "abc", "not-a-date", "2024-13-45",
		math.NaN(), math.Inf(1), 1e20, time.Time{}, nilTime,
		struct{}{}, []int{1}, true,
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			assert.Nil(t, reconcile.ParseDate(in), "entrada %#v", in)
		})
	}
}

func TestProcurementEffectiveDate(t *testing.T) {
	const delivered = "Teslim Edildi"
	actual, expected, ordered := day(2024, 1, 10), day(2024, 1, 5), day(2024, 1, 1)

	t.Run("entregado con fecha real", func(t *testing.T) {
		it := entity.ProcurementHistoryItem{ItemStatus: delivered, ActualDeliveryDate: actual, ExpectedDeliveryDate: expected, OrderDate: ordered}
		assert.Equal(t, actual, reconcile.ProcurementEffectiveDate(it, delivered))
	})
	t.Run("entregado sin fecha real usa la esperada", func(t *testing.T) {
		it := entity.ProcurementHistoryItem{ItemStatus: delivered, ExpectedDeliveryDate: expected, OrderDate: ordered}
		assert.Equal(t, expected, reconcile.ProcurementEffectiveDate(it, delivered))
	})
	t.Run("etiqueta distinta ignora la fecha real", func(t *testing.T) {
		it := entity.ProcurementHistoryItem{ItemStatus: "teslim edildi", ActualDeliveryDate: actual, ExpectedDeliveryDate: expected}
		assert.Equal(t, expected, reconcile.ProcurementEffectiveDate(it, delivered))
	})
	t.Run("sin esperada cae a la de orden", func(t *testing.T) {
		it := entity.ProcurementHistoryItem{ItemStatus: "Bekliyor", OrderDate: ordered}
		assert.Equal(t, ordered, reconcile.ProcurementEffectiveDate(it, delivered))
	})
	t.Run("sin fechas", func(t *testing.T) {
		assert.Nil(t, reconcile.ProcurementEffectiveDate(entity.ProcurementHistoryItem{}, delivered))
	})
}

func TestProductionEffectiveDate(t *testing.T) {
	ts := day(2024, 2, 1)
	assert.Equal(t, ts, reconcile.ProductionEffectiveDate(entity.StockMovement{MovementDate: ts}))
	assert.Nil(t, reconcile.ProductionEffectiveDate(entity.StockMovement{}))
}
