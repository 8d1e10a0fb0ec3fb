package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain"
)

// Querier subconjunto de pgxpool.Pool (y de pgxmock) que usan los lectores.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// wrapQueryErr encadena domain.ErrBackend; sin filas encadena además domain.ErrNotFound.
func wrapQueryErr(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return eris.Wrap(errors.Join(domain.ErrBackend, domain.ErrNotFound), op)
	}
	return eris.Wrap(errors.Join(domain.ErrBackend, err), op)
}
