package reconcile

import "github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"

// IdentityFields campos candidatos de identidad de un registro, en orden de prioridad.
type IdentityFields struct {
	MaterialID   string
	MaterialCode string
	ItemCode     string
	LineID       string
}

// Key devuelve el primer campo no vacío según la prioridad fija.
// No se normaliza nada (ni mayúsculas ni espacios): el llamador entrega datos limpios.
func (f IdentityFields) Key() string {
	for _, k := range [...]string{f.MaterialID, f.MaterialCode, f.ItemCode, f.LineID} {
		if k != "" {
			return k
		}
	}
	return ""
}

// ItemIdentity extrae los campos de identidad de una línea de orden.
func ItemIdentity(item entity.OrderItem) IdentityFields {
	return IdentityFields{
		MaterialID:   item.MaterialID,
		MaterialCode: item.MaterialCode,
		ItemCode:     item.ItemCode,
		LineID:       item.LineID,
	}
}

// Match compara por igualdad exacta la clave del registro con la del material:
// primero su ID y, como respaldo práctico, su Code.
func Match(record IdentityFields, material entity.MaterialRef) bool {
	key := record.Key()
	if key == "" {
		return false
	}
	if material.ID != "" && key == material.ID {
		return true
	}
	return material.Code != "" && key == material.Code
}
