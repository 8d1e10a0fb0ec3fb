package reconcile_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/reconcile"
)

func TestCategorize_DecisionTable(t *testing.T) {
	cases := []struct {
		name string
		mov  entity.StockMovement
		want entity.MovementCategory
	}{
		{"production", entity.StockMovement{SubType: "production", Type: "out"}, entity.CategoryProduction},
		{"production_output", entity.StockMovement{SubType: "production_output"}, entity.CategoryProduction},
		{"output new material", entity.StockMovement{SubType: "production_output_new_material"}, entity.CategoryProduction},
		{"scrap", entity.StockMovement{SubType: "scrap", Type: "in"}, entity.CategoryScrap},
		{"production_scrap in", entity.StockMovement{SubType: "production_scrap", Type: "in"}, entity.CategoryScrap},
		{"production_scrap out", entity.StockMovement{SubType: "production_scrap", Type: "out"}, entity.CategoryScrap},
		{"production_scrap gana a status", entity.StockMovement{SubType: "production_scrap", Status: "consumption"}, entity.CategoryScrap},
		{"consumption subtype", entity.StockMovement{SubType: "production_consumption"}, entity.CategoryConsumption},
		{"consumption status", entity.StockMovement{Status: "consumption", Type: "out"}, entity.CategoryConsumption},
		{"wip subtype", entity.StockMovement{SubType: "wip_reservation"}, entity.CategoryWIP},
		{"wip status", entity.StockMovement{Status: "wip", Type: "in"}, entity.CategoryWIP},
		{"ajuste entrada", entity.StockMovement{SubType: "adjustment", Type: "in"}, entity.CategoryAdjustmentIn},
		{"ajuste salida", entity.StockMovement{SubType: "adjustment", Type: "out"}, entity.CategoryAdjustmentOut},
		{"ajuste sin tipo", entity.StockMovement{SubType: "adjustment"}, entity.CategoryOther},
		{"entrega de orden", entity.StockMovement{SubType: "order_delivery", Type: "in"}, entity.CategoryOrder},
		{"entrada", entity.StockMovement{SubType: "transfer", Type: "in"}, entity.CategoryStockIn},
		{"salida", entity.StockMovement{Type: "out"}, entity.CategoryStockOut},
		{"nada", entity.StockMovement{SubType: "misc"}, entity.CategoryOther},
		{"mayúsculas no normalizadas", entity.StockMovement{SubType: "PRODUCTION", Type: "IN"}, entity.CategoryOther},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reconcile.Categorize(tc.mov))
			assert.Equal(t, tc.want, reconcile.Categorize(tc.mov), "función pura")
		})
	}
}

func TestIsProductionRelated(t *testing.T) {
	assert.True(t, reconcile.IsProductionRelated(entity.StockMovement{AssignmentID: "A1", SubType: "production_output"}))
	assert.False(t, reconcile.IsProductionRelated(entity.StockMovement{SubType: "production_output"}),
		"sin assignmentId queda fuera aunque el subtipo coincida")
	assert.False(t, reconcile.IsProductionRelated(entity.StockMovement{AssignmentID: "A1", SubType: "order_delivery"}))
	assert.False(t, reconcile.IsProductionRelated(entity.StockMovement{AssignmentID: "A1", SubType: "adjustment", Type: "in"}))
}

func TestProjectProduction(t *testing.T) {
	ts := day(2024, 3, 3)
	mov := entity.StockMovement{
		AssignmentID:  "A1",
		SubType:       "production_consumption",
		Status:        "done",
		WorkOrderCode: "WO-9",
		Quantity:      decimal.NewFromInt(4),
		MovementDate:  ts,
		Notes:         "hat 2",
	}

	item, ok := reconcile.ProjectProduction(mov)
	require.True(t, ok)
	assert.Equal(t, entity.CategoryConsumption, item.Category)
	assert.Equal(t, ts, item.Timestamp)
	assert.Equal(t, "WO-9", item.WorkOrderCode)
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, "hat 2", item.Notes)

	_, ok = reconcile.ProjectProduction(entity.StockMovement{SubType: "production"})
	assert.False(t, ok)
}
