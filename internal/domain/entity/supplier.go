package entity

import "time"

// Estados de proveedor y de material suministrado.
const (
	StatusActive     = "aktif"
	StatusPassive    = "pasif"
	StatusEvaluation = "değerlendirmede"
)

// IsKnownStatus indica si s es uno de los estados de vínculo admitidos.
func IsKnownStatus(s string) bool {
	switch s {
	case StatusActive, StatusPassive, StatusEvaluation:
		return true
	}
	return false
}

// SupplierRef proveedor ya normalizado (name || companyName resuelto en la ingesta).
type SupplierRef struct {
	ID     string
	Name   string
	Phone  string
	Email  string
	Status string
	// SuppliedMaterials vínculos proveedor-material propiedad del proveedor.
	SuppliedMaterials []SuppliedMaterialLink
}

// SuppliedMaterialLink entidad de unión entre proveedor y material con estado propio.
type SuppliedMaterialLink struct {
	MaterialID      string
	MaterialCode    string
	MaterialName    string
	Unit            string
	Status          string
	StatusUpdatedAt *time.Time
}

// Material vista de identidad del material del vínculo.
func (l SuppliedMaterialLink) Material() MaterialRef {
	return MaterialRef{ID: l.MaterialID, Code: l.MaterialCode, Name: l.MaterialName, Unit: l.Unit}
}
