package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicateCombination = errors.New("combinación producto/color/talla duplicada en el documento")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrInvalidState         = errors.New("el estado del documento no permite modificar líneas")
	ErrIllegalTransition    = errors.New("transición de estado no permitida")
	ErrConflict             = errors.New("conflicto con el estado actual")
	ErrUnauthorized         = errors.New("no autorizado")
)
