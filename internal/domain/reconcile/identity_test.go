package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/reconcile"
)

func TestIdentityFields_KeyPriority(t *testing.T) {
	cases := []struct {
		name   string
		fields reconcile.IdentityFields
		want   string
	}{
		{"material id gana", reconcile.IdentityFields{MaterialID: "M1", MaterialCode: "C1", ItemCode: "I1", LineID: "L1"}, "M1"},
		{"código si no hay id", reconcile.IdentityFields{MaterialCode: "C1", ItemCode: "I1"}, "C1"},
		{"itemCode de respaldo", reconcile.IdentityFields{ItemCode: "I1", LineID: "L1"}, "I1"},
		{"lineId al final", reconcile.IdentityFields{LineID: "L1"}, "L1"},
		{"vacío", reconcile.IdentityFields{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.fields.Key())
		})
	}
}

func TestMatch(t *testing.T) {
	material := entity.MaterialRef{ID: "M-001", Code: "HAM-01"}

	assert.True(t, reconcile.Match(reconcile.IdentityFields{MaterialID: "M-001"}, material))
	assert.True(t, reconcile.Match(reconcile.IdentityFields{MaterialCode: "HAM-01"}, material),
		"el código del material sirve de respaldo")
	assert.False(t, reconcile.Match(reconcile.IdentityFields{}, material), "sin clave no hay coincidencia")
	assert.False(t, reconcile.Match(reconcile.IdentityFields{MaterialID: "M-002", MaterialCode: "M-001"}, material),
		"solo se compara la primera clave no vacía")
}

func TestMatch_CaseSensitive(t *testing.T) {
	material := entity.MaterialRef{ID: "M-001"}

	assert.False(t, reconcile.Match(reconcile.IdentityFields{MaterialID: "m-001"}, material))
	assert.False(t, reconcile.Match(reconcile.IdentityFields{MaterialID: " M-001"}, material),
		"no se recortan espacios")
}

func TestMatch_EmptyMaterialNeverMatches(t *testing.T) {
	assert.False(t, reconcile.Match(reconcile.IdentityFields{MaterialID: "X"}, entity.MaterialRef{}))
}
