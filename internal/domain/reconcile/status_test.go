package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/reconcile"
)

// La política por defecto documentada: vínculo -> proveedor -> material -> "aktif" (default).
func TestStatusResolver_DefaultPolicy(t *testing.T) {
	r := reconcile.NewStatusResolver(reconcile.DefaultStatusPolicy())
	material := entity.MaterialRef{ID: "M1", Status: "pasif"}
	supplier := entity.SupplierRef{ID: "S1", Status: "değerlendirmede"}
	link := &entity.SuppliedMaterialLink{MaterialID: "M1", Status: "aktif"}

	assert.Equal(t, entity.EffectiveStatus{Status: "aktif", Source: entity.StatusSourceLink},
		r.Resolve(material, supplier, link))
	assert.Equal(t, entity.EffectiveStatus{Status: "değerlendirmede", Source: entity.StatusSourceSupplier},
		r.Resolve(material, supplier, nil))
	assert.Equal(t, entity.EffectiveStatus{Status: "pasif", Source: entity.StatusSourceMaterial},
		r.Resolve(material, entity.SupplierRef{}, &entity.SuppliedMaterialLink{}))
	assert.Equal(t, entity.EffectiveStatus{Status: "aktif", Source: entity.StatusSourceDefault},
		r.Resolve(entity.MaterialRef{}, entity.SupplierRef{}, nil))
}

func TestStatusResolver_CustomPrecedence(t *testing.T) {
	p, err := reconcile.ParseStatusPolicy([]string{"material", "Supplier"}, "pasif", false)
	require.NoError(t, err)
	r := reconcile.NewStatusResolver(p)

	got := r.Resolve(entity.MaterialRef{Status: "aktif"}, entity.SupplierRef{Status: "pasif"},
		&entity.SuppliedMaterialLink{Status: "değerlendirmede"})
	assert.Equal(t, entity.EffectiveStatus{Status: "aktif", Source: entity.StatusSourceMaterial}, got)

	got = r.Resolve(entity.MaterialRef{}, entity.SupplierRef{}, &entity.SuppliedMaterialLink{Status: "aktif"})
	assert.Equal(t, entity.EffectiveStatus{Status: "pasif", Source: entity.StatusSourceDefault}, got,
		"el vínculo no participa si no está en la precedencia")
}

func TestStatusResolver_SupplierVeto(t *testing.T) {
	p := reconcile.DefaultStatusPolicy()
	p.SupplierVeto = true
	r := reconcile.NewStatusResolver(p)

	got := r.Resolve(entity.MaterialRef{}, entity.SupplierRef{Status: "pasif"}, &entity.SuppliedMaterialLink{Status: "aktif"})
	assert.Equal(t, entity.EffectiveStatus{Status: "pasif", Source: entity.StatusSourceSupplier}, got)
}

func TestParseStatusPolicy_Errors(t *testing.T) {
	_, err := reconcile.ParseStatusPolicy([]string{"link", "warehouse"}, "aktif", false)
	assert.Error(t, err)
	_, err = reconcile.ParseStatusPolicy([]string{"link", "link"}, "aktif", false)
	assert.Error(t, err)
	_, err = reconcile.ParseStatusPolicy(nil, "aktif", false)
	assert.Error(t, err)
}

func TestStatusResolver_SourceAlwaysKnown(t *testing.T) {
	r := reconcile.NewStatusResolver(reconcile.DefaultStatusPolicy())
	known := map[entity.StatusSource]bool{
		entity.StatusSourceLink: true, entity.StatusSourceSupplier: true,
		entity.StatusSourceMaterial: true, entity.StatusSourceDefault: true,
	}
	for _, st := range []string{"", " ", "aktif"} {
		got := r.Resolve(entity.MaterialRef{Status: st}, entity.SupplierRef{Status: st}, &entity.SuppliedMaterialLink{Status: st})
		assert.True(t, known[got.Source])
	}
}
