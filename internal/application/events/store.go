package events

import (
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
	"github.com/jhoicas/Inventario-conciliacion/pkg/logger"
)

// Motivos de StockUpdate.
const (
	StockReasonMaterialDeleted = "material_deleted"
	StockReasonRefreshed       = "refreshed"
)

// StockUpdate aviso de que el stock o el catálogo de un material cambió en el backend.
type StockUpdate struct {
	MaterialID string
	Reason     string
}

// Store canales de notificación del proceso. Se crea una vez en main y se inyecta.
type Store struct {
	StockUpdates *Hub[StockUpdate]
	BulkProgress *Hub[entity.BulkOperationProgress]
}

// NewStore crea los hubs del proceso.
func NewStore(log *logger.Logger) *Store {
	return &Store{
		StockUpdates: NewHub[StockUpdate]("stock_updates", log),
		BulkProgress: NewHub[entity.BulkOperationProgress]("bulk_progress", log),
	}
}

// Close cierra todos los hubs.
func (s *Store) Close() {
	s.StockUpdates.Close()
	s.BulkProgress.Close()
}
