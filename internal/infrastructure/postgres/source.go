package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/reconcile"
	"github.com/jhoicas/Inventario-conciliacion/pkg/logger"
)

// Source lee órdenes, movimientos, lotes, proveedores y materiales directamente de la base
// del backend de registro. Solo lectura: las fechas se leen como texto ISO 8601 (to_json) y pasan
// por el mismo intérprete que la ingesta REST.
type Source struct {
	q   Querier
	log *logger.Logger
}

// NewSource construye el lector sobre un pool (o cualquier Querier).
func NewSource(q Querier, log *logger.Logger) *Source {
	if log == nil {
		log = logger.Nop()
	}
	return &Source{q: q, log: log.Component("postgres")}
}

const ordersQuery = `
	SELECT o.id::text, COALESCE(o.order_code, ''), COALESCE(to_json(o.order_date) #>> '{}', ''),
	       COALESCE(NULLIF(o.supplier_name, ''), NULLIF(s.name, ''), s.company_name, ''),
	       COALESCE(i.item_sequence, 0), COALESCE(i.material_id::text, ''), COALESCE(i.material_code, ''),
	       COALESCE(i.item_code, ''), COALESCE(i.line_id::text, ''),
	       COALESCE(i.quantity, 0), COALESCE(i.unit_price, 0), COALESCE(i.currency, ''), COALESCE(i.item_status, ''),
	       COALESCE(to_json(i.actual_delivery_date) #>> '{}', ''), COALESCE(to_json(i.expected_delivery_date) #>> '{}', '')
	FROM orders o
	JOIN order_items i ON i.order_id = o.id
	LEFT JOIN suppliers s ON s.id = o.supplier_id
	ORDER BY o.id, i.item_sequence`

// ListOrders órdenes con sus líneas, en el orden de la base.
func (s *Source) ListOrders(ctx context.Context) ([]entity.Order, error) {
	rows, err := s.q.Query(ctx, ordersQuery)
	if err != nil {
		return nil, wrapQueryErr(err, "list orders")
	}
	defer rows.Close()

	var orders []entity.Order
	index := map[string]int{}
	for rows.Next() {
		var (
			orderID, code, orderDate, supplier string
			item                               entity.OrderItem
			actual, expected                   string
			quantity, unitPrice                decimal.Decimal
		)
		if err := rows.Scan(
			&orderID, &code, &orderDate, &supplier,
			&item.Sequence, &item.MaterialID, &item.MaterialCode, &item.ItemCode, &item.LineID,
			&quantity, &unitPrice, &item.Currency, &item.ItemStatus, &actual, &expected,
		); err != nil {
			return nil, wrapQueryErr(err, "scan order item")
		}
		item.Quantity, item.UnitPrice = quantity, unitPrice
		item.ActualDeliveryDate = reconcile.ParseDate(actual)
		item.ExpectedDeliveryDate = reconcile.ParseDate(expected)

		i, ok := index[orderID]
		if !ok {
			i = len(orders)
			index[orderID] = i
			orders = append(orders, entity.Order{
				ID:           orderID,
				Code:         code,
				SupplierName: supplier,
				OrderDate:    reconcile.ParseDate(orderDate),
			})
		}
		if item.Sequence == 0 {
			item.Sequence = len(orders[i].Items) + 1
		}
		orders[i].Items = append(orders[i].Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(err, "list orders")
	}
	s.log.Debug().Int("orders", len(orders)).Msg("órdenes leídas")
	return orders, nil
}

const movementsQuery = `
	SELECT id::text, COALESCE(material_code, ''), COALESCE(type, ''), COALESCE(sub_type, ''), COALESCE(status, ''),
	       COALESCE(assignment_id::text, ''), COALESCE(work_order_code, ''), COALESCE(quantity, 0),
	       COALESCE(to_json(COALESCE(movement_date, created_at)) #>> '{}', ''), COALESCE(notes, '')
	FROM stock_movements
	WHERE material_code = $1`

// ListMovements movimientos de stock de un material.
func (s *Source) ListMovements(ctx context.Context, materialCode string) ([]entity.StockMovement, error) {
	rows, err := s.q.Query(ctx, movementsQuery, materialCode)
	if err != nil {
		return nil, wrapQueryErr(err, "list movements")
	}
	defer rows.Close()

	var out []entity.StockMovement
	for rows.Next() {
		var (
			m    entity.StockMovement
			date string
		)
		if err := rows.Scan(&m.ID, &m.MaterialCode, &m.Type, &m.SubType, &m.Status,
			&m.AssignmentID, &m.WorkOrderCode, &m.Quantity, &date, &m.Notes); err != nil {
			return nil, wrapQueryErr(err, "scan movement")
		}
		m.MovementDate = reconcile.ParseDate(date)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(err, "list movements")
	}
	return out, nil
}

const lotsQuery = `
	SELECT COALESCE(l.lot_number, ''), COALESCE(to_json(l.lot_date) #>> '{}', ''), COALESCE(l.supplier_lot_code, ''),
	       COALESCE(to_json(l.manufacturing_date) #>> '{}', ''), COALESCE(to_json(l.expiry_date) #>> '{}', ''),
	       COALESCE(l.balance, 0), COALESCE(l.status, ''), COALESCE(l.fifo_order, 0)
	FROM material_lots l
	JOIN materials m ON m.id = l.material_id
	WHERE m.code = $1 OR m.id::text = $1`

// ListLots lotes de un material (por código, o por id cuando no hay código).
func (s *Source) ListLots(ctx context.Context, materialCode string) ([]reconcile.LotInput, error) {
	rows, err := s.q.Query(ctx, lotsQuery, materialCode)
	if err != nil {
		return nil, wrapQueryErr(err, "list lots")
	}
	defer rows.Close()

	var out []reconcile.LotInput
	for rows.Next() {
		var (
			in                            reconcile.LotInput
			lotDate, manufactured, expiry string
			balance                       decimal.Decimal
			fifo                          int
		)
		if err := rows.Scan(&in.LotNumber, &lotDate, &in.SupplierLotCode, &manufactured, &expiry,
			&balance, &in.Status, &fifo); err != nil {
			return nil, wrapQueryErr(err, "scan lot")
		}
		in.LotDate, in.ManufacturingDate, in.ExpiryDate = lotDate, manufactured, expiry
		in.Balance, in.FIFOOrder = balance, fifo
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(err, "list lots")
	}
	return out, nil
}

const supplierQuery = `
	SELECT id::text, COALESCE(NULLIF(name, ''), company_name, ''), COALESCE(phone, ''), COALESCE(email, ''),
	       COALESCE(status, '')
	FROM suppliers
	WHERE id::text = $1`

const suppliedMaterialsQuery = `
	SELECT COALESCE(sm.material_id::text, ''), COALESCE(m.code, ''), COALESCE(m.name, ''), COALESCE(m.unit, ''),
	       COALESCE(sm.status, ''), COALESCE(to_json(sm.status_updated_at) #>> '{}', '')
	FROM supplied_materials sm
	LEFT JOIN materials m ON m.id = sm.material_id
	WHERE sm.supplier_id::text = $1
	ORDER BY sm.material_id`

// GetSupplier proveedor con sus vínculos de material.
func (s *Source) GetSupplier(ctx context.Context, id string) (entity.SupplierRef, error) {
	var sup entity.SupplierRef
	err := s.q.QueryRow(ctx, supplierQuery, id).Scan(&sup.ID, &sup.Name, &sup.Phone, &sup.Email, &sup.Status)
	if err != nil {
		return entity.SupplierRef{}, wrapQueryErr(err, "get supplier")
	}

	rows, err := s.q.Query(ctx, suppliedMaterialsQuery, id)
	if err != nil {
		return entity.SupplierRef{}, wrapQueryErr(err, "list supplied materials")
	}
	defer rows.Close()
	for rows.Next() {
		var (
			link    entity.SuppliedMaterialLink
			updated string
		)
		if err := rows.Scan(&link.MaterialID, &link.MaterialCode, &link.MaterialName, &link.Unit,
			&link.Status, &updated); err != nil {
			return entity.SupplierRef{}, wrapQueryErr(err, "scan supplied material")
		}
		link.StatusUpdatedAt = reconcile.ParseDate(updated)
		sup.SuppliedMaterials = append(sup.SuppliedMaterials, link)
	}
	if err := rows.Err(); err != nil {
		return entity.SupplierRef{}, wrapQueryErr(err, "list supplied materials")
	}
	return sup, nil
}

const materialsQuery = `
	SELECT id::text, COALESCE(code, ''), COALESCE(name, ''), COALESCE(unit, ''), COALESCE(status, '')
	FROM materials
	ORDER BY code`

// ListMaterials catálogo de materiales.
func (s *Source) ListMaterials(ctx context.Context) ([]entity.MaterialRef, error) {
	rows, err := s.q.Query(ctx, materialsQuery)
	if err != nil {
		return nil, wrapQueryErr(err, "list materials")
	}
	defer rows.Close()

	var out []entity.MaterialRef
	for rows.Next() {
		var m entity.MaterialRef
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Unit, &m.Status); err != nil {
			return nil, wrapQueryErr(err, "scan material")
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(err, "list materials")
	}
	return out, nil
}
