package http

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida; los validadores de struct son seguros para
// uso concurrente.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct valida un DTO y devuelve un mensaje apto para el cliente,
// o "" si es válido.
func validateStruct(s interface{}) string {
	err := validate.Struct(s)
	if err == nil {
		return ""
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "datos inválidos"
	}
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " es requerido"
	case "email":
		return field + " debe ser un email válido"
	case "uuid":
		return field + " debe ser un UUID válido"
	case "min":
		return field + " está por debajo del mínimo permitido"
	case "max":
		return field + " excede el máximo permitido"
	default:
		return field + " es inválido"
	}
}
