package status_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-conciliacion/internal/application/status"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/reconcile"
	"github.com/jhoicas/Inventario-conciliacion/pkg/logger"
)

type fakeCatalog struct {
	supplier     entity.SupplierRef
	materials    []entity.MaterialRef
	supplierErr  error
	materialsErr error
}

func (f *fakeCatalog) GetSupplier(_ context.Context, id string) (entity.SupplierRef, error) {
	if f.supplierErr != nil {
		return entity.SupplierRef{}, f.supplierErr
	}
	return f.supplier, nil
}

func (f *fakeCatalog) ListMaterials(context.Context) ([]entity.MaterialRef, error) {
	return f.materials, f.materialsErr
}

func newCatalog() *fakeCatalog {
	return &fakeCatalog{
		supplier: entity.SupplierRef{
			ID:     "S1",
			Name:   "Acme",
			Status: entity.StatusActive,
			SuppliedMaterials: []entity.SuppliedMaterialLink{
				{MaterialID: "M1", Status: entity.StatusPassive},
				{MaterialCode: "HAM-02"},
				{MaterialID: "GONE", MaterialName: "Retirado"},
			},
		},
		materials: []entity.MaterialRef{
			{ID: "M1", Code: "HAM-01", Status: entity.StatusActive},
			{ID: "M2", Code: "HAM-02", Status: entity.StatusEvaluation},
		},
	}
}

func TestSupplierMaterialStatuses_DefaultPolicy(t *testing.T) {
	uc := status.NewUseCase(newCatalog(), nil, logger.Nop())

	got, err := uc.SupplierMaterialStatuses(context.Background(), "S1")
	require.NoError(t, err)
	require.Len(t, got.Materials, 3)

	// el vínculo gana cuando tiene estado propio
	assert.Equal(t, entity.EffectiveStatus{Status: entity.StatusPassive, Source: entity.StatusSourceLink}, got.Materials[0].Effective)
	assert.Equal(t, "HAM-01", got.Materials[0].Material.Code)

	// sin estado de vínculo cae al proveedor
	assert.Equal(t, entity.StatusSourceSupplier, got.Materials[1].Effective.Source)
	assert.Equal(t, "M2", got.Materials[1].Material.ID)

	// material fuera del catálogo: se usa la identidad del vínculo
	assert.Equal(t, "Retirado", got.Materials[2].Material.Name)
}

func TestSupplierMaterialStatuses_MaterialFirstPolicy(t *testing.T) {
	cat := newCatalog()
	cat.supplier.Status = ""
	policy, err := reconcile.ParseStatusPolicy([]string{"material", "link"}, entity.StatusActive, false)
	require.NoError(t, err)
	uc := status.NewUseCase(cat, reconcile.NewStatusResolver(policy), nil)

	got, err := uc.SupplierMaterialStatuses(context.Background(), "S1")
	require.NoError(t, err)

	assert.Equal(t, entity.EffectiveStatus{Status: entity.StatusActive, Source: entity.StatusSourceMaterial}, got.Materials[0].Effective)
	assert.Equal(t, entity.EffectiveStatus{Status: entity.StatusEvaluation, Source: entity.StatusSourceMaterial}, got.Materials[1].Effective)
	assert.Equal(t, entity.EffectiveStatus{Status: entity.StatusActive, Source: entity.StatusSourceDefault}, got.Materials[2].Effective)
}

func TestSupplierMaterialStatuses_Errors(t *testing.T) {
	uc := status.NewUseCase(newCatalog(), nil, nil)
	_, err := uc.SupplierMaterialStatuses(context.Background(), " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	cat := newCatalog()
	cat.supplierErr = domain.ErrNotFound
	_, err = status.NewUseCase(cat, nil, nil).SupplierMaterialStatuses(context.Background(), "S9")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cat = newCatalog()
	cat.materialsErr = errors.New("timeout")
	_, err = status.NewUseCase(cat, nil, nil).SupplierMaterialStatuses(context.Background(), "S1")
	assert.ErrorContains(t, err, "timeout")
}

func TestMaterialStatus_UnlinkedMaterial(t *testing.T) {
	uc := status.NewUseCase(newCatalog(), nil, nil)

	got, err := uc.MaterialStatus(context.Background(), "S1", entity.MaterialRef{ID: "M9", Status: entity.StatusPassive})
	require.NoError(t, err)
	assert.Empty(t, got.Link.MaterialID)
	assert.Equal(t, entity.StatusSourceSupplier, got.Effective.Source)

	got, err = uc.MaterialStatus(context.Background(), "S1", entity.MaterialRef{ID: "M1"})
	require.NoError(t, err)
	assert.Equal(t, "M1", got.Link.MaterialID)
	assert.Equal(t, entity.StatusSourceLink, got.Effective.Source)
}

func TestMaterialStatus_UsesCatalogStatus(t *testing.T) {
	policy, err := reconcile.ParseStatusPolicy([]string{"material", "link", "supplier"}, entity.StatusActive, false)
	require.NoError(t, err)
	uc := status.NewUseCase(newCatalog(), reconcile.NewStatusResolver(policy), nil)

	all, err := uc.SupplierMaterialStatuses(context.Background(), "S1")
	require.NoError(t, err)
	one, err := uc.MaterialStatus(context.Background(), "S1", entity.MaterialRef{ID: "M1"})
	require.NoError(t, err)

	want := entity.EffectiveStatus{Status: entity.StatusActive, Source: entity.StatusSourceMaterial}
	assert.Equal(t, want, all.Materials[0].Effective)
	assert.Equal(t, want, one.Effective)
	assert.Equal(t, "HAM-01", one.Material.Code)

	// sin vínculo también se consulta el catálogo
	cat := newCatalog()
	cat.supplier.SuppliedMaterials = nil
	one, err = status.NewUseCase(cat, reconcile.NewStatusResolver(policy), nil).
		MaterialStatus(context.Background(), "S1", entity.MaterialRef{ID: "M2"})
	require.NoError(t, err)
	assert.Equal(t, entity.EffectiveStatus{Status: entity.StatusEvaluation, Source: entity.StatusSourceMaterial}, one.Effective)

	cat = newCatalog()
	cat.materialsErr = errors.New("timeout")
	_, err = status.NewUseCase(cat, nil, nil).MaterialStatus(context.Background(), "S1", entity.MaterialRef{ID: "M1"})
	assert.ErrorContains(t, err, "timeout")
}
