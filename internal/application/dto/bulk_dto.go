package dto

import (
	"time"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
)

// BulkDeleteRequest entrada de POST /api/bulk/materials/delete.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BulkUnitErrorResponse fallo de una unidad.
type BulkUnitErrorResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// BulkProgressResponse progreso de la operación masiva.
type BulkProgressResponse struct {
	RunID          string                  `json:"run_id"`
	Total          int                     `json:"total"`
	Completed      int                     `json:"completed"`
	Succeeded      int                     `json:"succeeded"`
	Skipped        int                     `json:"skipped"`
	CurrentID      string                  `json:"current_id,omitempty"`
	CurrentName    string                  `json:"current_name,omitempty"`
	Errors         []BulkUnitErrorResponse `json:"errors"`
	Cancelling     bool                    `json:"cancelling"`
	Cancelled      bool                    `json:"cancelled"`
	Finished       bool                    `json:"finished"`
	FullySucceeded bool                    `json:"fully_succeeded"`
	RefreshError   string                  `json:"refresh_error,omitempty"`
	StartedAt      time.Time               `json:"started_at"`
	FinishedAt     *time.Time              `json:"finished_at,omitempty"`
}

// BulkProgressFromEntity proyecta el progreso.
func BulkProgressFromEntity(p entity.BulkOperationProgress) BulkProgressResponse {
	out := BulkProgressResponse{
		RunID:          p.RunID,
		Total:          p.Total,
		Completed:      p.Completed,
		Succeeded:      p.Succeeded,
		Skipped:        p.Skipped,
		CurrentID:      p.CurrentID,
		CurrentName:    p.CurrentName,
		Errors:         make([]BulkUnitErrorResponse, 0, len(p.Errors)),
		Cancelling:     p.Cancelling,
		Cancelled:      p.Cancelled,
		Finished:       p.Finished,
		FullySucceeded: p.FullySucceeded(),
		RefreshError:   p.RefreshError,
		StartedAt:      p.StartedAt,
	}
	for _, e := range p.Errors {
		out.Errors = append(out.Errors, BulkUnitErrorResponse{ID: e.ID, Name: e.Name, Message: e.Message})
	}
	if !p.FinishedAt.IsZero() {
		t := p.FinishedAt
		out.FinishedAt = &t
	}
	return out
}
