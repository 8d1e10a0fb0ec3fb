package reconcile_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/reconcile"
)

func TestNormalizeLot_Defaults(t *testing.T) {
	rec := reconcile.NormalizeLot(reconcile.LotInput{LotNumber: "L-1", Balance: "abc", FIFOOrder: "x", LotDate: "nope"})

	assert.True(t, rec.Balance.IsZero(), "balance no numérico vale 0")
	assert.Equal(t, 0, rec.FIFOOrder)
	assert.Nil(t, rec.LotDate)
	assert.Equal(t, entity.LotStatusActive, rec.Status)
	assert.Equal(t, entity.LotCodePlaceholder, rec.SupplierLotCode)
}

func TestNormalizeLot_Values(t *testing.T) {
	rec := reconcile.NormalizeLot(reconcile.LotInput{
		LotNumber:         "L-2",
		SupplierLotCode:   "SUP-9",
		Status:            "blocked",
		LotDate:           "2024-01-10",
		ManufacturingDate: "2023-12-01",
		ExpiryDate:        float64(1735689600000),
		Balance:           12.5,
		FIFOOrder:         "3",
	})

	require.NotNil(t, rec.LotDate)
	require.NotNil(t, rec.ManufacturingDate)
	require.NotNil(t, rec.ExpiryDate)
	assert.Equal(t, 2025, rec.ExpiryDate.Year())
	assert.True(t, rec.Balance.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, 3, rec.FIFOOrder)
	assert.Equal(t, "blocked", rec.Status)
	assert.Equal(t, "SUP-9", rec.SupplierLotCode)
}

func TestToDecimal(t *testing.T) {
	assert.True(t, reconcile.ToDecimal(nil).IsZero())
	assert.True(t, reconcile.ToDecimal("").IsZero())
	assert.True(t, reconcile.ToDecimal(" 7 ").Equal(decimal.NewFromInt(7)))
	assert.True(t, reconcile.ToDecimal(true).Equal(decimal.NewFromInt(1)))
	assert.True(t, reconcile.ToDecimal(map[string]int{}).IsZero())
	assert.Equal(t, 2, reconcile.ToInt("2.9"))
}

func TestSortFIFO(t *testing.T) {
	lots := []entity.LotRecord{
		{LotNumber: "C", FIFOOrder: 2},
		{LotNumber: "B", FIFOOrder: 1},
		{LotNumber: "A", FIFOOrder: 1, LotDate: day(2024, 1, 1)},
		{LotNumber: "D", FIFOOrder: 1, LotDate: day(2023, 1, 1)},
	}
	got := reconcile.SortFIFO(lots)
	var order []string
	for _, l := range got {
		order = append(order, l.LotNumber)
	}
	assert.Equal(t, []string{"D", "A", "B", "C"}, order)
}
