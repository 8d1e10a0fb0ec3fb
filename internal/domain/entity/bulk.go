package entity

import "time"

// BulkUnitError fallo de una unidad de la operación masiva.
type BulkUnitError struct {
	ID      string
	Name    string
	Message string
}

// BulkOperationProgress progreso de una ejecución masiva. Propiedad exclusiva del coordinador;
// los observadores reciben copias (Clone).
type BulkOperationProgress struct {
	RunID        string
	Total        int
	Completed    int
	Succeeded    int
	Skipped      int
	CurrentID    string
	CurrentName  string
	Errors       []BulkUnitError
	Cancelling   bool
	Cancelled    bool
	Finished     bool
	RefreshError string
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Clone copia profunda para publicar instantáneas.
func (p BulkOperationProgress) Clone() BulkOperationProgress {
	out := p
	if p.Errors != nil {
		out.Errors = make([]BulkUnitError, len(p.Errors))
		copy(out.Errors, p.Errors)
	}
	return out
}

// FullySucceeded true solo si terminó sin errores y sin cancelación.
func (p BulkOperationProgress) FullySucceeded() bool {
	return p.Finished && len(p.Errors) == 0 && !p.Cancelled
}
