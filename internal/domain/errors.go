package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")

	// ErrBackend envuelve fallos de transporte o de parseo contra el backend de registro.
	ErrBackend = errors.New("error del backend")

	// ErrLoadInProgress: ya hay una carga pendiente del mismo historial para el mismo material.
	ErrLoadInProgress = errors.New("carga en curso para este material")

	// Operaciones masivas.
	ErrRunInProgress      = errors.New("operación masiva en curso")
	ErrResultNotDismissed = errors.New("resultado de la operación anterior sin descartar")
	ErrNoRun              = errors.New("no hay operación masiva")
)
