package history

import (
	"context"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/reconcile"
)

// OrderSource órdenes de compra ya normalizadas (GET /api/orders).
type OrderSource interface {
	ListOrders(ctx context.Context) ([]entity.Order, error)
}

// MovementSource movimientos de stock de un material (GET /api/stockMovements?materialCode=).
type MovementSource interface {
	ListMovements(ctx context.Context, materialCode string) ([]entity.StockMovement, error)
}

// LotSource lotes crudos de un material (GET /api/materials/{code}/lots).
type LotSource interface {
	ListLots(ctx context.Context, materialCode string) ([]reconcile.LotInput, error)
}

// Source backend de registro completo para los tres historiales.
type Source interface {
	OrderSource
	MovementSource
	LotSource
}
