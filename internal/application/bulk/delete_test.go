package bulk_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-conciliacion/internal/application/bulk"
	"github.com/jhoicas/Inventario-conciliacion/internal/application/events"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
)

type fakeDeleter struct {
	removed map[string]bool
	fail    map[string]error
	calls   []string
}

func (f *fakeDeleter) DeleteMaterial(_ context.Context, id string) (bool, error) {
	f.calls = append(f.calls, id)
	if err := f.fail[id]; err != nil {
		return false, err
	}
	return f.removed[id], nil
}

func TestDeleteMaterialUnits(t *testing.T) {
	del := &fakeDeleter{
		removed: map[string]bool{"M2": true},
		fail:    map[string]error{"M3": errors.New("material en uso")},
	}
	hub := events.NewHub[events.StockUpdate]("test", nil)
	sub := hub.Subscribe(8)
	defer sub.Unsubscribe()

	materials := []entity.MaterialRef{{ID: "M1", Name: "Harina"}, {ID: "M2", Code: "HAM-02"}, {ID: "M3"}}
	units := bulk.DeleteMaterialUnits(del, materials, hub)
	require.Len(t, units, 3)
	assert.Equal(t, "Harina", units[0].Name)
	assert.Equal(t, "HAM-02", units[1].Name)

	final, err := bulk.NewCoordinator(bulk.Options{}).Execute(context.Background(), units, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"M1", "M2", "M3"}, del.calls)
	assert.Equal(t, 1, final.Succeeded)
	assert.Equal(t, 1, final.Skipped)
	require.Len(t, final.Errors, 1)
	assert.Equal(t, "M3", final.Errors[0].ID)

	require.Len(t, sub.C, 1)
	ev := <-sub.C
	assert.Equal(t, events.StockUpdate{MaterialID: "M1", Reason: events.StockReasonMaterialDeleted}, ev)
}

func TestMaterialRefs(t *testing.T) {
	refs := bulk.MaterialRefs([]string{"a", "b"})
	assert.Equal(t, []entity.MaterialRef{{ID: "a"}, {ID: "b"}}, refs)
}

type listerFunc func(ctx context.Context) ([]entity.MaterialRef, error)

func (f listerFunc) ListMaterials(ctx context.Context) ([]entity.MaterialRef, error) { return f(ctx) }

func TestRefreshCatalog(t *testing.T) {
	hub := events.NewHub[events.StockUpdate]("test", nil)
	sub := hub.Subscribe(4)
	defer sub.Unsubscribe()

	ok := bulk.RefreshCatalog(listerFunc(func(context.Context) ([]entity.MaterialRef, error) {
		return []entity.MaterialRef{{ID: "M1"}}, nil
	}), hub)
	require.NoError(t, ok(context.Background()))
	require.Len(t, sub.C, 1)
	assert.Equal(t, events.StockUpdate{Reason: events.StockReasonRefreshed}, <-sub.C)

	boom := errors.New("backend caído")
	failing := bulk.RefreshCatalog(listerFunc(func(context.Context) ([]entity.MaterialRef, error) {
		return nil, boom
	}), hub)
	assert.ErrorIs(t, failing(context.Background()), boom)
	assert.Empty(t, sub.C)
}
