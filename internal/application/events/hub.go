package events

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-conciliacion/pkg/logger"
)

// DefaultBuffer tamaño del buffer por suscriptor.
const DefaultBuffer = 32

// Subscription suscripción a un Hub. Se cierra con Unsubscribe; después C queda cerrado.
type Subscription[T any] struct {
	ID  string
	C   <-chan T
	ch  chan T
	hub *Hub[T]
}

// Unsubscribe da de baja la suscripción. Idempotente.
func (s *Subscription[T]) Unsubscribe() {
	s.hub.remove(s.ID)
}

// Hub canal publicar/suscribir con carga tipada. Un suscriptor lento pierde eventos
// (buffer lleno) en lugar de bloquear al publicador.
type Hub[T any] struct {
	name string
	log  *logger.Logger

	mu     sync.RWMutex
	subs   map[string]*Subscription[T]
	closed bool
}

// NewHub crea un hub con nombre (para logs).
func NewHub[T any](name string, log *logger.Logger) *Hub[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Hub[T]{name: name, log: log, subs: make(map[string]*Subscription[T])}
}

// Subscribe registra un suscriptor con el buffer indicado (<= 0 usa DefaultBuffer).
func (h *Hub[T]) Subscribe(buffer int) *Subscription[T] {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan T, buffer)
	sub := &Subscription[T]{ID: uuid.NewString(), C: ch, ch: ch, hub: h}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return sub
	}
	h.subs[sub.ID] = sub
	h.log.Debug().Str("hub", h.name).Str("subscription", sub.ID).Int("total", len(h.subs)).Msg("suscriptor registrado")
	return sub
}

func (h *Hub[T]) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if sub, ok := h.subs[id]; ok {
		close(sub.ch)
		delete(h.subs, id)
		h.log.Debug().Str("hub", h.name).Str("subscription", id).Int("total", len(h.subs)).Msg("suscriptor dado de baja")
	}
}

// Publish entrega el evento a todos los suscriptores sin bloquear.
// Devuelve cuántos suscriptores lo recibieron.
func (h *Hub[T]) Publish(event T) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	delivered := 0
	for id, sub := range h.subs {
		select {
		case sub.ch <- event:
			delivered++
		default:
			h.log.Warn().Str("hub", h.name).Str("subscription", id).Msg("buffer lleno, evento descartado")
		}
	}
	return delivered
}

// Subscribers número de suscriptores activos.
func (h *Hub[T]) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close cierra todas las suscripciones; publicar después no entrega nada.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, sub := range h.subs {
		close(sub.ch)
		delete(h.subs, id)
	}
	h.closed = true
}
