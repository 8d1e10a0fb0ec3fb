package bulk

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/pkg/logger"
)

// Outcome resultado de una unidad que no falló.
type Outcome int

const (
	// OutcomeSucceeded la mutación se aplicó.
	OutcomeSucceeded Outcome = iota
	// OutcomeSkipped el recurso ya estaba en el estado destino (no-op idempotente).
	OutcomeSkipped
)

// Unit mutación independiente dentro de una operación masiva.
type Unit struct {
	ID   string
	Name string
	Run  func(ctx context.Context) (Outcome, error)
}

// Options dependencias opcionales del coordinador.
type Options struct {
	// RatePerSecond ritmo máximo de unidades; 0 = sin límite.
	RatePerSecond float64
	// Observer recibe una copia del progreso tras cada cambio.
	Observer func(entity.BulkOperationProgress)
	// Refresh reconcilia el estado local con el backend al terminar la ejecución.
	Refresh func(ctx context.Context) error
	Logger  *logger.Logger
}

// Coordinator ejecuta unidades en orden, de a una, con cancelación cooperativa.
// Estados: sin ejecución -> en curso -> terminada (hasta Dismiss).
type Coordinator struct {
	limiter  *rate.Limiter
	observer func(entity.BulkOperationProgress)
	refresh  func(ctx context.Context) error
	log      *logger.Logger

	mu       sync.Mutex
	progress entity.BulkOperationProgress
	units    []Unit
	token    *CancelToken
	hasRun   bool
	running  bool
	looping  bool
}

// NewCoordinator construye el coordinador.
func NewCoordinator(opts Options) *Coordinator {
	c := &Coordinator{observer: opts.Observer, refresh: opts.Refresh, log: opts.Logger}
	if c.log == nil {
		c.log = logger.Nop()
	}
	c.log = c.log.Component("bulk")
	if opts.RatePerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), 1)
	}
	return c
}

// Start prepara una ejecución. Se rechaza si hay otra en curso o si el resultado anterior
// no se descartó con Dismiss. token nil crea uno nuevo.
func (c *Coordinator) Start(units []Unit, token *CancelToken) (entity.BulkOperationProgress, error) {
	if len(units) == 0 {
		return entity.BulkOperationProgress{}, domain.ErrInvalidInput
	}
	if token == nil {
		token = NewCancelToken()
	}

	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return entity.BulkOperationProgress{}, domain.ErrRunInProgress
	}
	if c.hasRun {
		c.mu.Unlock()
		return entity.BulkOperationProgress{}, domain.ErrResultNotDismissed
	}
	c.units = append([]Unit(nil), units...)
	c.token = token
	c.hasRun = true
	c.running = true
	c.progress = entity.BulkOperationProgress{
		RunID:     uuid.NewString(),
		Total:     len(units),
		StartedAt: time.Now(),
	}
	snap := c.progress.Clone()
	c.mu.Unlock()

	c.log.Info().Str("run", snap.RunID).Int("total", snap.Total).Msg("operación masiva iniciada")
	c.publish(snap)
	return snap, nil
}

// Run procesa las unidades de la ejecución iniciada con Start y devuelve el progreso final.
// Cancelar ctx equivale a pedir cancelación: la unidad en curso termina con un contexto
// sin cancelación y el recorrido se detiene en el siguiente límite entre unidades.
func (c *Coordinator) Run(ctx context.Context) (entity.BulkOperationProgress, error) {
	c.mu.Lock()
	if !c.running || c.looping {
		c.mu.Unlock()
		return entity.BulkOperationProgress{}, domain.ErrNoRun
	}
	c.looping = true
	units, token := c.units, c.token
	c.mu.Unlock()

	stop := context.AfterFunc(ctx, func() { _ = c.RequestCancel() })
	defer stop()
	unitCtx := context.WithoutCancel(ctx)

	cancelled := false
	for _, u := range units {
		if token.IsCancelled() || ctx.Err() != nil {
			cancelled = true
			break
		}
		c.update(func(p *entity.BulkOperationProgress) {
			p.CurrentID, p.CurrentName = u.ID, u.Name
		})
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				c.update(func(p *entity.BulkOperationProgress) { p.CurrentID, p.CurrentName = "", "" })
				cancelled = true
				break
			}
		}

		outcome, err := runUnit(unitCtx, u)
		c.update(func(p *entity.BulkOperationProgress) {
			switch {
			case err != nil:
				p.Errors = append(p.Errors, entity.BulkUnitError{ID: u.ID, Name: u.Name, Message: err.Error()})
			case outcome == OutcomeSkipped:
				p.Skipped++
			default:
				p.Succeeded++
			}
			p.Completed++
			p.CurrentID, p.CurrentName = "", ""
		})
		if err != nil {
			c.log.Warn().Err(err).Str("unit", u.ID).Msg("unidad fallida")
		}
	}

	var refreshErr error
	if c.refresh != nil {
		refreshErr = c.refresh(context.WithoutCancel(ctx))
	}

	// Terminada y liberada en el mismo paso: quien observe Finished ya puede descartar.
	final := c.update(func(p *entity.BulkOperationProgress) {
		p.Finished = true
		p.Cancelling = false
		p.Cancelled = cancelled
		p.FinishedAt = time.Now()
		if refreshErr != nil {
			p.RefreshError = refreshErr.Error()
		}
		c.running, c.looping = false, false
	})
	if refreshErr != nil {
		c.log.Warn().Err(refreshErr).Str("run", final.RunID).Msg("refresco tras operación masiva fallido")
	}

	c.log.Info().
		Str("run", final.RunID).
		Int("completed", final.Completed).
		Int("skipped", final.Skipped).
		Int("errors", len(final.Errors)).
		Bool("cancelled", final.Cancelled).
		Msg("operación masiva terminada")
	return final, nil
}

// Execute Start + Run.
func (c *Coordinator) Execute(ctx context.Context, units []Unit, token *CancelToken) (entity.BulkOperationProgress, error) {
	if _, err := c.Start(units, token); err != nil {
		return entity.BulkOperationProgress{}, err
	}
	return c.Run(ctx)
}

// RequestCancel pide cancelar la ejecución en curso; surte efecto entre unidades.
func (c *Coordinator) RequestCancel() error {
	c.mu.Lock()
	if !c.running || c.progress.Finished {
		c.mu.Unlock()
		return domain.ErrNoRun
	}
	c.token.Cancel()
	c.progress.Cancelling = true
	snap := c.progress.Clone()
	c.mu.Unlock()

	c.publish(snap)
	return nil
}

// Progress copia del progreso actual; false si no hay ejecución.
func (c *Coordinator) Progress() (entity.BulkOperationProgress, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasRun {
		return entity.BulkOperationProgress{}, false
	}
	return c.progress.Clone(), true
}

// Dismiss descarta el resultado terminado y habilita una nueva ejecución.
func (c *Coordinator) Dismiss() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.running:
		return domain.ErrRunInProgress
	case !c.hasRun:
		return domain.ErrNoRun
	}
	c.hasRun = false
	c.units = nil
	c.token = nil
	c.progress = entity.BulkOperationProgress{}
	return nil
}

// update aplica fn bajo el mutex y publica la copia resultante.
func (c *Coordinator) update(fn func(p *entity.BulkOperationProgress)) entity.BulkOperationProgress {
	c.mu.Lock()
	fn(&c.progress)
	snap := c.progress.Clone()
	c.mu.Unlock()
	c.publish(snap)
	return snap
}

func (c *Coordinator) publish(p entity.BulkOperationProgress) {
	if c.observer != nil {
		c.observer(p)
	}
}

// runUnit convierte un pánico de la unidad en un error de esa unidad.
func runUnit(ctx context.Context, u Unit) (outcome Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			outcome, err = OutcomeSucceeded, fmt.Errorf("pánico: %v", r)
		}
	}()
	if u.Run == nil {
		return OutcomeSucceeded, fmt.Errorf("unidad %s sin operación", u.ID)
	}
	return u.Run(ctx)
}
