package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrDuplicate         = errors.New("usuario o email ya registrado")
	ErrSKUAlreadyExists  = errors.New("el SKU ya está registrado")
	ErrNameAlreadyExists = errors.New("el nombre ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInactiveAccount   = errors.New("cuenta inactiva")
)

// ValidationError es un error de validación con mensaje apto para el cliente (400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation construye un ValidationError.
func Validation(message string) error {
	return &ValidationError{Message: message}
}
