package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// Errores del ciclo de vida de turnos. Todos son fallos de validación visibles al cliente;
// ninguno es transitorio.
var (
	ErrWorkerNotFound     = errors.New("trabajador no encontrado")
	ErrRestaurantNotFound = errors.New("restaurante no encontrado")
	ErrShiftNotFound      = errors.New("turno no encontrado")
	ErrAssignmentMismatch = errors.New("el trabajador no pertenece al restaurante")
	ErrWorkerMismatch     = errors.New("el turno no está asignado a este trabajador")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrInvalidStatus      = errors.New("estado de turno no reconocido")
)

// IsNotFound agrupa los errores que el cliente debe ver como 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrWorkerNotFound) ||
		errors.Is(err, ErrRestaurantNotFound) ||
		errors.Is(err, ErrShiftNotFound)
}
