package bulk

import "sync/atomic"

// CancelToken bandera de cancelación cooperativa. El coordinador la consulta entre unidades;
// la unidad en curso nunca se interrumpe.
type CancelToken struct {
	cancelled atomic.Bool
}

// NewCancelToken token sin cancelar.
func NewCancelToken() *CancelToken {
	return &CancelToken{}
}

// Cancel marca el token. Idempotente.
func (t *CancelToken) Cancel() {
	t.cancelled.Store(true)
}

// IsCancelled indica si se pidió cancelar.
func (t *CancelToken) IsCancelled() bool {
	return t.cancelled.Load()
}
