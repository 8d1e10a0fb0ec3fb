package history

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/pkg/logger"
)

// ChannelConfig parametriza un canal de historial: de dónde traer, cómo filtrar, cómo proyectar y cómo ordenar.
type ChannelConfig[R, T any] struct {
	Name    string
	Fetch   func(ctx context.Context, material entity.MaterialRef) ([]R, error)
	Match   func(record R, material entity.MaterialRef) bool // nil: todo registro coincide
	Project func(record R) (T, bool)                         // false: el registro se descarta
	Rank    func(items []T) []T                              // nil: orden del backend
}

// Snapshot estado de un canal para un material.
type Snapshot[T any] struct {
	Loading  bool
	Error    string
	Items    []T
	LoadedAt time.Time
}

// Channel carga bajo demanda (nunca automáticamente) un historial por material.
// Un segundo Load del mismo material mientras el primero está pendiente se rechaza.
type Channel[R, T any] struct {
	cfg ChannelConfig[R, T]
	log *logger.Logger

	mu       sync.Mutex
	inflight map[string]bool
	state    map[string]Snapshot[T]
}

// NewChannel construye el canal.
func NewChannel[R, T any](cfg ChannelConfig[R, T], log *logger.Logger) *Channel[R, T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Channel[R, T]{
		cfg:      cfg,
		log:      log.Component("history." + cfg.Name),
		inflight: make(map[string]bool),
		state:    make(map[string]Snapshot[T]),
	}
}

// Name nombre del canal.
func (c *Channel[R, T]) Name() string { return c.cfg.Name }

// Load trae, filtra, proyecta y ordena los registros del material.
// Los errores de transporte quedan en Snapshot.Error y se devuelven envueltos; nunca entran en pánico.
func (c *Channel[R, T]) Load(ctx context.Context, material entity.MaterialRef) ([]T, error) {
	key := material.Key()
	if key == "" {
		return nil, domain.ErrInvalidInput
	}

	c.mu.Lock()
	if c.inflight[key] {
		c.mu.Unlock()
		return nil, domain.ErrLoadInProgress
	}
	c.inflight[key] = true
	prev := c.state[key]
	c.state[key] = Snapshot[T]{Loading: true, Items: prev.Items, LoadedAt: prev.LoadedAt}
	c.mu.Unlock()

	items, err := c.run(ctx, material)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, key)
	if err != nil {
		c.state[key] = Snapshot[T]{Error: err.Error(), Items: nil, LoadedAt: time.Now()}
		c.log.Warn().Err(err).Str("material", key).Msg("carga de historial fallida")
		return nil, err
	}
	c.state[key] = Snapshot[T]{Items: items, LoadedAt: time.Now()}
	c.log.Debug().Str("material", key).Int("count", len(items)).Msg("historial cargado")
	return items, nil
}

func (c *Channel[R, T]) run(ctx context.Context, material entity.MaterialRef) (items []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			items, err = nil, fmt.Errorf("%s: %v", c.cfg.Name, r)
		}
	}()

	records, err := c.cfg.Fetch(ctx, material)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.cfg.Name, err)
	}
	items = make([]T, 0, len(records))
	for _, rec := range records {
		if c.cfg.Match != nil && !c.cfg.Match(rec, material) {
			continue
		}
		item, ok := c.cfg.Project(rec)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	if c.cfg.Rank != nil {
		items = c.cfg.Rank(items)
	}
	return items, nil
}

// Snapshot estado actual del canal para el material (vacío si nunca se cargó).
func (c *Channel[R, T]) Snapshot(material entity.MaterialRef) Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state[material.Key()]
}

// Reset olvida el estado del material (p. ej. tras un StockUpdate).
// Con clave vacía olvida todos los materiales sin carga en curso.
func (c *Channel[R, T]) Reset(materialKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if materialKey != "" {
		if !c.inflight[materialKey] {
			delete(c.state, materialKey)
		}
		return
	}
	for key := range c.state {
		if !c.inflight[key] {
			delete(c.state, key)
		}
	}
}
