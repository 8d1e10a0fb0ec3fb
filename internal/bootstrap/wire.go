package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-conciliacion/internal/application/bulk"
	"github.com/jhoicas/Inventario-conciliacion/internal/application/events"
	"github.com/jhoicas/Inventario-conciliacion/internal/application/history"
	"github.com/jhoicas/Inventario-conciliacion/internal/application/status"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/reconcile"
	"github.com/jhoicas/Inventario-conciliacion/internal/infrastructure/backend"
	"github.com/jhoicas/Inventario-conciliacion/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-conciliacion/pkg/config"
	"github.com/jhoicas/Inventario-conciliacion/pkg/jwt"
	"github.com/jhoicas/Inventario-conciliacion/pkg/logger"
)

// Backend todo lo que las capas de aplicación leen del registro.
type Backend interface {
	history.Source
	status.SupplierCatalog
}

// Services grafo de dependencias compartido por la API y la CLI.
type Services struct {
	Events  *events.Store
	History *history.UseCase
	Status  *status.UseCase
	Catalog status.SupplierCatalog
	// Deleter nil cuando la fuente es de solo lectura (Postgres).
	Deleter bulk.MaterialDeleter
	Bulk    *bulk.Coordinator

	closers []func()
}

// Close libera la conexión a la base y cierra los hubs.
func (s *Services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// Wire construye los servicios según SOURCE_KIND.
func Wire(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Services, error) {
	policy, err := reconcile.ParseStatusPolicy(cfg.Reconcile.StatusPrecedence, cfg.Reconcile.StatusDefault, cfg.Reconcile.SupplierVeto)
	if err != nil {
		return nil, fmt.Errorf("política de estado: %w", err)
	}

	svc := &Services{Events: events.NewStore(log)}
	svc.closers = append(svc.closers, svc.Events.Close)

	var src Backend
	switch cfg.Backend.Source {
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			svc.Close()
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		svc.closers = append(svc.closers, pool.Close)
		src = postgres.NewSource(pool, log)
	default:
		client := backend.NewClient(backend.Options{
			BaseURL:       cfg.Backend.BaseURL,
			Timeout:       cfg.Backend.Timeout,
			RatePerSecond: cfg.Backend.RatePerSecond,
			Tokens:        jwt.NewSource(cfg.JWT.Secret, cfg.App.Name, jwt.ScopeWrite, cfg.JWT.Issuer, cfg.JWT.Expiration),
			Logger:        log,
		})
		src = client
		svc.Deleter = client
	}

	svc.Catalog = src
	svc.History = history.NewUseCase(src, history.Config{
		Limit:          cfg.Reconcile.HistoryCap,
		DeliveredLabel: cfg.Reconcile.DeliveredLabel,
	}, log)
	svc.Status = status.NewUseCase(src, reconcile.NewStatusResolver(policy), log)
	svc.Bulk = bulk.NewCoordinator(bulk.Options{
		RatePerSecond: cfg.Reconcile.BulkRatePerSecond,
		Observer:      func(p entity.BulkOperationProgress) { svc.Events.BulkProgress.Publish(p) },
		Refresh:       bulk.RefreshCatalog(src, svc.Events.StockUpdates),
		Logger:        log,
	})

	log.Info().
		Str("source", cfg.Backend.Source).
		Int("history_cap", cfg.Reconcile.HistoryCap).
		Bool("bulk", svc.Deleter != nil).
		Msg("servicios inicializados")
	return svc, nil
}
