package entity

// MaterialRef identidad de un material usada por todos los comparadores.
// ID es la clave autoritativa; Code es la clave de respaldo (muchos registros solo traen código).
type MaterialRef struct {
	ID     string
	Code   string
	Name   string
	Unit   string
	Status string // estado propio del material (puede venir vacío)
}

// Key devuelve la clave de identidad del material: ID, o Code si no hay ID.
func (m MaterialRef) Key() string {
	if m.ID != "" {
		return m.ID
	}
	return m.Code
}

// LookupCode código a usar en endpoints por código (/materials/{code}/lots, ?materialCode=).
// En varias pantallas se asume id == code, por eso se cae al ID.
func (m MaterialRef) LookupCode() string {
	if m.Code != "" {
		return m.Code
	}
	return m.ID
}
