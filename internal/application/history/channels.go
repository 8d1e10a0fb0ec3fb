package history

import (
	"context"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/reconcile"
	"github.com/jhoicas/Inventario-conciliacion/pkg/logger"
)

// OrderLine línea de orden junto a su orden, unidad de trabajo del historial de compras.
type OrderLine struct {
	Order entity.Order
	Item  entity.OrderItem
}

// ProcurementChannel historial de compras de un material.
type ProcurementChannel = Channel[OrderLine, entity.ProcurementHistoryItem]

// ProductionChannel historial de producción de un material.
type ProductionChannel = Channel[entity.StockMovement, entity.ProductionHistoryItem]

// LotChannel lotes de un material en orden FIFO.
type LotChannel = Channel[reconcile.LotInput, entity.LotRecord]

// NewProcurementChannel órdenes -> líneas que coinciden con el material -> fecha efectiva -> top-N.
func NewProcurementChannel(src OrderSource, deliveredLabel string, limit int, log *logger.Logger) *ProcurementChannel {
	return NewChannel(ChannelConfig[OrderLine, entity.ProcurementHistoryItem]{
		Name: "procurement",
		Fetch: func(ctx context.Context, _ entity.MaterialRef) ([]OrderLine, error) {
			orders, err := src.ListOrders(ctx)
			if err != nil {
				return nil, err
			}
			var lines []OrderLine
			for _, o := range orders {
				for _, it := range o.Items {
					lines = append(lines, OrderLine{Order: o, Item: it})
				}
			}
			return lines, nil
		},
		Match: func(l OrderLine, m entity.MaterialRef) bool {
			return reconcile.Match(reconcile.ItemIdentity(l.Item), m)
		},
		Project: func(l OrderLine) (entity.ProcurementHistoryItem, bool) {
			return ProcurementItem(l, deliveredLabel), true
		},
		Rank: func(items []entity.ProcurementHistoryItem) []entity.ProcurementHistoryItem {
			return reconcile.RankProcurement(items, limit)
		},
	}, log)
}

// ProcurementItem instantánea de una línea con su fecha efectiva calculada.
func ProcurementItem(l OrderLine, deliveredLabel string) entity.ProcurementHistoryItem {
	item := entity.ProcurementHistoryItem{
		OrderID:              l.Order.ID,
		OrderCode:            l.Order.Code,
		ItemSequence:         l.Item.Sequence,
		SupplierName:         l.Order.SupplierName,
		Quantity:             l.Item.Quantity,
		UnitPrice:            l.Item.UnitPrice,
		Currency:             l.Item.Currency,
		ItemStatus:           l.Item.ItemStatus,
		ActualDeliveryDate:   l.Item.ActualDeliveryDate,
		ExpectedDeliveryDate: l.Item.ExpectedDeliveryDate,
		OrderDate:            l.Order.OrderDate,
	}
	item.EffectiveDate = reconcile.ProcurementEffectiveDate(item, deliveredLabel)
	return item
}

// NewProductionChannel movimientos ligados a producción, categorizados y ordenados por fecha.
func NewProductionChannel(src MovementSource, limit int, log *logger.Logger) *ProductionChannel {
	return NewChannel(ChannelConfig[entity.StockMovement, entity.ProductionHistoryItem]{
		Name: "production",
		Fetch: func(ctx context.Context, m entity.MaterialRef) ([]entity.StockMovement, error) {
			return src.ListMovements(ctx, m.LookupCode())
		},
		// El backend ya filtra por código; si el movimiento trae código propio, debe coincidir.
		Match: func(mv entity.StockMovement, m entity.MaterialRef) bool {
			return mv.MaterialCode == "" || reconcile.Match(reconcile.IdentityFields{MaterialCode: mv.MaterialCode}, m)
		},
		Project: reconcile.ProjectProduction,
		Rank: func(items []entity.ProductionHistoryItem) []entity.ProductionHistoryItem {
			return reconcile.RankProduction(items, limit)
		},
	}, log)
}

// NewLotChannel lotes normalizados en orden FIFO, sin tope.
func NewLotChannel(src LotSource, log *logger.Logger) *LotChannel {
	return NewChannel(ChannelConfig[reconcile.LotInput, entity.LotRecord]{
		Name: "lots",
		Fetch: func(ctx context.Context, m entity.MaterialRef) ([]reconcile.LotInput, error) {
			return src.ListLots(ctx, m.LookupCode())
		},
		Project: func(in reconcile.LotInput) (entity.LotRecord, bool) {
			return reconcile.NormalizeLot(in), true
		},
		Rank: reconcile.SortFIFO,
	}, log)
}
