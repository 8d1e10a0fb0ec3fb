package status

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/reconcile"
	"github.com/jhoicas/Inventario-conciliacion/pkg/logger"
)

// SupplierCatalog proveedores y catálogo de materiales del backend de registro.
type SupplierCatalog interface {
	GetSupplier(ctx context.Context, id string) (entity.SupplierRef, error)
	ListMaterials(ctx context.Context) ([]entity.MaterialRef, error)
}

// MaterialStatus material suministrado con su estado efectivo.
type MaterialStatus struct {
	Material  entity.MaterialRef
	Link      entity.SuppliedMaterialLink
	Effective entity.EffectiveStatus
}

// SupplierStatuses proveedor con el estado efectivo de cada material que suministra.
type SupplierStatuses struct {
	Supplier  entity.SupplierRef
	Materials []MaterialStatus
}

// UseCase resuelve estados efectivos de los materiales de un proveedor.
type UseCase struct {
	catalog  SupplierCatalog
	resolver *reconcile.StatusResolver
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(catalog SupplierCatalog, resolver *reconcile.StatusResolver, log *logger.Logger) *UseCase {
	if resolver == nil {
		resolver = reconcile.NewStatusResolver(reconcile.DefaultStatusPolicy())
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{catalog: catalog, resolver: resolver, log: log.Component("status")}
}

// Resolve estado efectivo de un trío ya cargado.
func (uc *UseCase) Resolve(material entity.MaterialRef, supplier entity.SupplierRef, link *entity.SuppliedMaterialLink) entity.EffectiveStatus {
	return uc.resolver.Resolve(material, supplier, link)
}

// SupplierMaterialStatuses carga el proveedor y el catálogo, y resuelve el estado de cada vínculo.
// Un vínculo cuyo material ya no está en el catálogo se resuelve con los datos del propio vínculo.
func (uc *UseCase) SupplierMaterialStatuses(ctx context.Context, supplierID string) (SupplierStatuses, error) {
	if strings.TrimSpace(supplierID) == "" {
		return SupplierStatuses{}, domain.ErrInvalidInput
	}
	supplier, err := uc.catalog.GetSupplier(ctx, supplierID)
	if err != nil {
		return SupplierStatuses{}, fmt.Errorf("proveedor %s: %w", supplierID, err)
	}
	materials, err := uc.catalog.ListMaterials(ctx)
	if err != nil {
		return SupplierStatuses{}, fmt.Errorf("catálogo de materiales: %w", err)
	}

	out := SupplierStatuses{Supplier: supplier, Materials: make([]MaterialStatus, 0, len(supplier.SuppliedMaterials))}
	for i := range supplier.SuppliedMaterials {
		link := supplier.SuppliedMaterials[i]
		material := findMaterial(materials, link)
		out.Materials = append(out.Materials, MaterialStatus{
			Material:  material,
			Link:      link,
			Effective: uc.resolver.Resolve(material, supplier, &link),
		})
	}
	uc.log.Debug().Str("supplier", supplierID).Int("materials", len(out.Materials)).Msg("estados resueltos")
	return out, nil
}

// MaterialStatus estado efectivo de un material concreto para un proveedor.
// El estado propio del material sale del catálogo; si no figura se usa el de la petición.
// Si el proveedor no lo suministra se resuelve sin vínculo.
func (uc *UseCase) MaterialStatus(ctx context.Context, supplierID string, material entity.MaterialRef) (MaterialStatus, error) {
	if strings.TrimSpace(supplierID) == "" || material.Key() == "" {
		return MaterialStatus{}, domain.ErrInvalidInput
	}
	supplier, err := uc.catalog.GetSupplier(ctx, supplierID)
	if err != nil {
		return MaterialStatus{}, fmt.Errorf("proveedor %s: %w", supplierID, err)
	}
	materials, err := uc.catalog.ListMaterials(ctx)
	if err != nil {
		return MaterialStatus{}, fmt.Errorf("catálogo de materiales: %w", err)
	}
	for i := range supplier.SuppliedMaterials {
		link := supplier.SuppliedMaterials[i]
		if reconcile.Match(linkIdentity(link), material) {
			resolved := findMaterial(materials, link)
			return MaterialStatus{Material: resolved, Link: link, Effective: uc.resolver.Resolve(resolved, supplier, &link)}, nil
		}
	}
	resolved := material
	for _, m := range materials {
		if reconcile.Match(reconcile.IdentityFields{MaterialID: material.ID, MaterialCode: material.Code}, m) {
			resolved = m
			break
		}
	}
	return MaterialStatus{Material: resolved, Effective: uc.resolver.Resolve(resolved, supplier, nil)}, nil
}

func linkIdentity(l entity.SuppliedMaterialLink) reconcile.IdentityFields {
	return reconcile.IdentityFields{MaterialID: l.MaterialID, MaterialCode: l.MaterialCode}
}

func findMaterial(catalog []entity.MaterialRef, link entity.SuppliedMaterialLink) entity.MaterialRef {
	for _, m := range catalog {
		if reconcile.Match(linkIdentity(link), m) {
			return m
		}
	}
	return link.Material()
}
