package history

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Inventario-conciliacion/internal/application/events"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/reconcile"
	"github.com/jhoicas/Inventario-conciliacion/pkg/logger"
)

// Config parámetros de los historiales.
type Config struct {
	Limit          int    // tope de compras y producción
	DeliveredLabel string // etiqueta exacta de "entregado"
}

// UseCase fachada de los tres canales de historial.
type UseCase struct {
	Procurement *ProcurementChannel
	Production  *ProductionChannel
	Lots        *LotChannel
	log         *logger.Logger
}

// NewUseCase construye los canales sobre la misma fuente.
func NewUseCase(src Source, cfg Config, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		Procurement: NewProcurementChannel(src, cfg.DeliveredLabel, cfg.Limit, log),
		Production:  NewProductionChannel(src, cfg.Limit, log),
		Lots:        NewLotChannel(src, log),
		log:         log.Component("history"),
	}
}

// Report vista combinada de un material. Los errores por canal no anulan a los demás.
type Report struct {
	Material    entity.MaterialRef
	Procurement []entity.ProcurementHistoryItem
	Production  []entity.ProductionHistoryItem
	Lots        []entity.LotRecord
	Summary     []reconcile.CurrencySummary
	Errors      map[string]string // canal -> mensaje
}

// Report carga los tres canales a la vez. Son tipos distintos, así que no compiten entre sí;
// devuelve el primer error además del informe parcial.
func (uc *UseCase) Report(ctx context.Context, material entity.MaterialRef) (Report, error) {
	rep := Report{Material: material, Errors: map[string]string{}}
	var mu sync.Mutex
	record := func(channel string, err error) error {
		if err != nil {
			mu.Lock()
			rep.Errors[channel] = err.Error()
			mu.Unlock()
		}
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		items, err := uc.Procurement.Load(ctx, material)
		rep.Procurement = items
		return record(uc.Procurement.Name(), err)
	})
	g.Go(func() error {
		items, err := uc.Production.Load(ctx, material)
		rep.Production = items
		return record(uc.Production.Name(), err)
	})
	g.Go(func() error {
		items, err := uc.Lots.Load(ctx, material)
		rep.Lots = items
		return record(uc.Lots.Name(), err)
	})
	err := g.Wait()

	rep.Summary = reconcile.SummarizeProcurement(rep.Procurement)
	uc.log.Debug().Str("material", material.Key()).Int("errors", len(rep.Errors)).Msg("informe de material")
	return rep, err
}

// Follow olvida el estado cacheado de un material cada vez que llega un StockUpdate,
// para que la siguiente carga explícita refleje el backend. Termina al cerrar ctx o el hub.
func (uc *UseCase) Follow(ctx context.Context, hub *events.Hub[events.StockUpdate]) {
	sub := hub.Subscribe(events.DefaultBuffer)
	defer sub.Unsubscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.C:
			if !ok {
				return
			}
			uc.Procurement.Reset(ev.MaterialID)
			uc.Production.Reset(ev.MaterialID)
			uc.Lots.Reset(ev.MaterialID)
		}
	}
}
