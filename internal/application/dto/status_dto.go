package dto

import (
	"time"

	"github.com/jhoicas/Inventario-conciliacion/internal/application/status"
)

// MaterialStatusResponse material suministrado con su insignia de estado.
type MaterialStatusResponse struct {
	MaterialID      string     `json:"material_id"`
	MaterialCode    string     `json:"material_code"`
	MaterialName    string     `json:"material_name"`
	Unit            string     `json:"unit"`
	LinkStatus      string     `json:"link_status"`
	StatusUpdatedAt *time.Time `json:"status_updated_at"`
	Status          string     `json:"status"`
	StatusSource    string     `json:"status_source"`
}

// SupplierStatusesResponse proveedor con el estado efectivo de sus materiales.
type SupplierStatusesResponse struct {
	SupplierID     string                   `json:"supplier_id"`
	SupplierName   string                   `json:"supplier_name"`
	SupplierStatus string                   `json:"supplier_status"`
	Materials      []MaterialStatusResponse `json:"materials"`
}

// SupplierStatusesFromUseCase proyecta el resultado del caso de uso.
func SupplierStatusesFromUseCase(in status.SupplierStatuses) SupplierStatusesResponse {
	out := SupplierStatusesResponse{
		SupplierID:     in.Supplier.ID,
		SupplierName:   in.Supplier.Name,
		SupplierStatus: in.Supplier.Status,
		Materials:      make([]MaterialStatusResponse, 0, len(in.Materials)),
	}
	for _, m := range in.Materials {
		out.Materials = append(out.Materials, MaterialStatusFromUseCase(m))
	}
	return out
}

// MaterialStatusFromUseCase proyecta un material con su estado efectivo.
func MaterialStatusFromUseCase(m status.MaterialStatus) MaterialStatusResponse {
	name := m.Material.Name
	if name == "" {
		name = m.Link.MaterialName
	}
	return MaterialStatusResponse{
		MaterialID:      m.Material.ID,
		MaterialCode:    m.Material.Code,
		MaterialName:    name,
		Unit:            m.Material.Unit,
		LinkStatus:      m.Link.Status,
		StatusUpdatedAt: m.Link.StatusUpdatedAt,
		Status:          m.Effective.Status,
		StatusSource:    string(m.Effective.Source),
	}
}
