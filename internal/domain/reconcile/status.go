package reconcile

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
)

// StatusPolicy regla inyectable de precedencia del estado efectivo.
type StatusPolicy struct {
	// Precedence orden de consulta de las fuentes; gana el primer estado no vacío.
	Precedence []entity.StatusSource
	// Default estado cuando ninguna fuente aporta valor (fuente "default").
	Default string
	// SupplierVeto un proveedor pasif impone su estado sobre cualquier otra fuente.
	SupplierVeto bool
}

// DefaultStatusPolicy vínculo -> proveedor -> material, por defecto aktif, sin veto.
func DefaultStatusPolicy() StatusPolicy {
	return StatusPolicy{
		Precedence: []entity.StatusSource{
			entity.StatusSourceLink,
			entity.StatusSourceSupplier,
			entity.StatusSourceMaterial,
		},
		Default: entity.StatusActive,
	}
}

// ParseStatusPolicy construye la política desde nombres de fuente (configuración).
func ParseStatusPolicy(order []string, def string, veto bool) (StatusPolicy, error) {
	p := StatusPolicy{Default: def, SupplierVeto: veto}
	seen := map[entity.StatusSource]bool{}
	for _, name := range order {
		src := entity.StatusSource(strings.ToLower(strings.TrimSpace(name)))
		switch src {
		case entity.StatusSourceLink, entity.StatusSourceSupplier, entity.StatusSourceMaterial:
		default:
			return StatusPolicy{}, fmt.Errorf("fuente de estado desconocida: %q", name)
		}
		if seen[src] {
			return StatusPolicy{}, fmt.Errorf("fuente de estado repetida: %q", name)
		}
		seen[src] = true
		p.Precedence = append(p.Precedence, src)
	}
	if len(p.Precedence) == 0 {
		return StatusPolicy{}, fmt.Errorf("la precedencia de estado no puede estar vacía")
	}
	return p, nil
}

// StatusResolver combina estado de material, proveedor y vínculo según la política.
type StatusResolver struct {
	policy StatusPolicy
}

// NewStatusResolver construye el resolvedor con la política dada.
func NewStatusResolver(policy StatusPolicy) *StatusResolver {
	return &StatusResolver{policy: policy}
}

// Policy política vigente.
func (r *StatusResolver) Policy() StatusPolicy {
	return r.policy
}

// Resolve devuelve el estado efectivo y la fuente ganadora. link puede ser nil (material no vinculado).
func (r *StatusResolver) Resolve(material entity.MaterialRef, supplier entity.SupplierRef, link *entity.SuppliedMaterialLink) entity.EffectiveStatus {
	if r.policy.SupplierVeto && strings.TrimSpace(supplier.Status) == entity.StatusPassive {
		return entity.EffectiveStatus{Status: entity.StatusPassive, Source: entity.StatusSourceSupplier}
	}
	for _, src := range r.policy.Precedence {
		var status string
		switch src {
		case entity.StatusSourceLink:
			if link != nil {
				status = link.Status
			}
		case entity.StatusSourceSupplier:
			status = supplier.Status
		case entity.StatusSourceMaterial:
			status = material.Status
		}
		if s := strings.TrimSpace(status); s != "" {
			return entity.EffectiveStatus{Status: s, Source: src}
		}
	}
	return entity.EffectiveStatus{Status: r.policy.Default, Source: entity.StatusSourceDefault}
}
