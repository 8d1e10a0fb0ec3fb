package reconcile

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
)

// WeightedAverageCost costo promedio ponderado tras una entrada.
// Nuevo = ((cantActual * costoActual) + (cantEntrada * costoEntrada)) / (cantActual + cantEntrada)
func WeightedAverageCost(qty, cost, qtyIn, costIn decimal.Decimal) decimal.Decimal {
	sum := qty.Add(qtyIn)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return qty.Mul(cost).Add(qtyIn.Mul(costIn)).Div(sum)
}

// CurrencySummary agregado de compras en una moneda.
type CurrencySummary struct {
	Currency         string
	Lines            int
	TotalQuantity    decimal.Decimal
	TotalAmount      decimal.Decimal
	AverageUnitPrice decimal.Decimal
}

// SummarizeProcurement agrega líneas de compra por moneda (orden alfabético de moneda).
// Nunca mezcla monedas en un mismo promedio.
func SummarizeProcurement(items []entity.ProcurementHistoryItem) []CurrencySummary {
	byCurrency := map[string]*CurrencySummary{}
	for _, it := range items {
		s, ok := byCurrency[it.Currency]
		if !ok {
			s = &CurrencySummary{Currency: it.Currency}
			byCurrency[it.Currency] = s
		}
		s.AverageUnitPrice = WeightedAverageCost(s.TotalQuantity, s.AverageUnitPrice, it.Quantity, it.UnitPrice)
		s.TotalQuantity = s.TotalQuantity.Add(it.Quantity)
		s.TotalAmount = s.TotalAmount.Add(it.Total())
		s.Lines++
	}
	out := make([]CurrencySummary, 0, len(byCurrency))
	for _, s := range byCurrency {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b CurrencySummary) int {
		if a.Currency < b.Currency {
			return -1
		}
		if a.Currency > b.Currency {
			return 1
		}
		return 0
	})
	return out
}
