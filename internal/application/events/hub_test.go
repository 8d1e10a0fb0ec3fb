package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-conciliacion/internal/application/events"
	"github.com/jhoicas/Inventario-conciliacion/pkg/logger"
)

func TestHub_PublishSubscribe(t *testing.T) {
	hub := events.NewHub[events.StockUpdate]("test", logger.Nop())
	a := hub.Subscribe(4)
	b := hub.Subscribe(4)
	require.Equal(t, 2, hub.Subscribers())

	n := hub.Publish(events.StockUpdate{MaterialID: "M1", Reason: events.StockReasonMaterialDeleted})
	assert.Equal(t, 2, n)

	assert.Equal(t, "M1", (<-a.C).MaterialID)
	assert.Equal(t, "M1", (<-b.C).MaterialID)
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := events.NewHub[int]("test", nil)
	sub := hub.Subscribe(1)

	sub.Unsubscribe()
	sub.Unsubscribe()

	_, open := <-sub.C
	assert.False(t, open)
	assert.Equal(t, 0, hub.Subscribers())
	assert.Equal(t, 0, hub.Publish(1))
}

func TestHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := events.NewHub[int]("test", nil)
	sub := hub.Subscribe(1)

	assert.Equal(t, 1, hub.Publish(1))
	assert.Equal(t, 0, hub.Publish(2), "buffer lleno: se descarta")
	assert.Equal(t, 1, <-sub.C)
}

func TestHub_CloseAndLateSubscribe(t *testing.T) {
	hub := events.NewHub[int]("test", nil)
	sub := hub.Subscribe(1)
	hub.Close()

	_, open := <-sub.C
	assert.False(t, open)

	late := hub.Subscribe(1)
	_, open = <-late.C
	assert.False(t, open, "suscribirse a un hub cerrado devuelve un canal cerrado")
	late.Unsubscribe()
}

func TestStore(t *testing.T) {
	s := events.NewStore(logger.Nop())
	sub := s.StockUpdates.Subscribe(0)
	s.StockUpdates.Publish(events.StockUpdate{MaterialID: "X"})
	assert.Equal(t, "X", (<-sub.C).MaterialID)
	s.Close()
}
