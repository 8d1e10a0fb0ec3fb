package bulk

import (
	"context"

	"github.com/jhoicas/Inventario-conciliacion/internal/application/events"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
)

// MaterialDeleter borrado remoto de materiales (DELETE /api/materials/{id}).
// alreadyRemoved=true cuando el backend responde "already_removed".
type MaterialDeleter interface {
	DeleteMaterial(ctx context.Context, id string) (alreadyRemoved bool, err error)
}

// DeleteMaterialUnits una unidad por material. Un material ya borrado cuenta como omitido;
// cada borrado efectivo publica un StockUpdate si hay hub.
func DeleteMaterialUnits(deleter MaterialDeleter, materials []entity.MaterialRef, updates *events.Hub[events.StockUpdate]) []Unit {
	units := make([]Unit, 0, len(materials))
	for _, m := range materials {
		id := m.Key()
		name := m.Name
		if name == "" {
			name = m.Code
		}
		units = append(units, Unit{
			ID:   id,
			Name: name,
			Run: func(ctx context.Context) (Outcome, error) {
				removed, err := deleter.DeleteMaterial(ctx, id)
				if err != nil {
					return OutcomeSucceeded, err
				}
				if removed {
					return OutcomeSkipped, nil
				}
				if updates != nil {
					updates.Publish(events.StockUpdate{MaterialID: id, Reason: events.StockReasonMaterialDeleted})
				}
				return OutcomeSucceeded, nil
			},
		})
	}
	return units
}

// MaterialRefs materiales identificados solo por id.
func MaterialRefs(ids []string) []entity.MaterialRef {
	out := make([]entity.MaterialRef, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.MaterialRef{ID: id})
	}
	return out
}

// MaterialLister catálogo de materiales del backend.
type MaterialLister interface {
	ListMaterials(ctx context.Context) ([]entity.MaterialRef, error)
}

// RefreshCatalog vuelve a leer el catálogo al terminar una ejecución y avisa a los
// suscriptores con un StockUpdate sin material (todo el estado cacheado queda obsoleto).
func RefreshCatalog(lister MaterialLister, updates *events.Hub[events.StockUpdate]) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if _, err := lister.ListMaterials(ctx); err != nil {
			return err
		}
		if updates != nil {
			updates.Publish(events.StockUpdate{Reason: events.StockReasonRefreshed})
		}
		return nil
	}
}
