package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/jhoicas/Inventario-conciliacion/internal/application/dto"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/reconcile"
)

// ListOrders GET /api/orders.
func (c *Client) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var resp dto.OrdersResponse
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &resp); err != nil {
		return nil, err
	}
	out := make([]entity.Order, 0, len(resp.Orders))
	for _, o := range resp.Orders {
		out = append(out, o.ToEntity())
	}
	return out, nil
}

// ListMovements GET /api/stockMovements?materialCode=.
func (c *Client) ListMovements(ctx context.Context, materialCode string) ([]entity.StockMovement, error) {
	var resp dto.MovementsResponse
	q := url.Values{"materialCode": {materialCode}}
	if err := c.do(ctx, http.MethodGet, "/api/stockMovements", q, &resp); err != nil {
		return nil, err
	}
	out := make([]entity.StockMovement, 0, len(resp.Movements))
	for _, m := range resp.Movements {
		out = append(out, m.ToEntity())
	}
	return out, nil
}

// ListLots GET /api/materials/{code}/lots.
func (c *Client) ListLots(ctx context.Context, materialCode string) ([]reconcile.LotInput, error) {
	var resp dto.LotsResponse
	if err := c.do(ctx, http.MethodGet, "/api/materials/"+escape(materialCode)+"/lots", nil, &resp); err != nil {
		return nil, err
	}
	out := make([]reconcile.LotInput, 0, len(resp.Lots))
	for _, l := range resp.Lots {
		out = append(out, l.ToLotInput())
	}
	return out, nil
}

// GetSupplier GET /api/suppliers/{id}.
func (c *Client) GetSupplier(ctx context.Context, id string) (entity.SupplierRef, error) {
	var resp dto.SupplierResponse
	if err := c.do(ctx, http.MethodGet, "/api/suppliers/"+escape(id), nil, &resp); err != nil {
		return entity.SupplierRef{}, err
	}
	return resp.Supplier.ToEntity(), nil
}

// ListMaterials GET /api/materials.
func (c *Client) ListMaterials(ctx context.Context) ([]entity.MaterialRef, error) {
	var resp dto.MaterialsResponse
	if err := c.do(ctx, http.MethodGet, "/api/materials", nil, &resp); err != nil {
		return nil, err
	}
	out := make([]entity.MaterialRef, 0, len(resp.Materials))
	for _, m := range resp.Materials {
		out = append(out, m.ToEntity())
	}
	return out, nil
}

// DeleteMaterial DELETE /api/materials/{id}. "already_removed" y 404 cuentan como ya borrado.
func (c *Client) DeleteMaterial(ctx context.Context, id string) (bool, error) {
	var resp dto.DeleteMaterialResponse
	err := c.do(ctx, http.MethodDelete, "/api/materials/"+escape(id), nil, &resp)
	if errors.Is(err, domain.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return resp.Action == dto.DeleteActionAlreadyRemoved, nil
}
