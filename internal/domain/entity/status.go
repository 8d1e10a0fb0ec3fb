package entity

// StatusSource identifica qué entrada determinó el estado efectivo.
type StatusSource string

const (
	StatusSourceMaterial StatusSource = "material"
	StatusSourceSupplier StatusSource = "supplier"
	StatusSourceLink     StatusSource = "link"
	StatusSourceDefault  StatusSource = "default"
)

// EffectiveStatus estado derivado (no persistido) mostrado como insignia.
type EffectiveStatus struct {
	Status string
	Source StatusSource
}
