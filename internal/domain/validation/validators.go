// Package validation contiene validadores puros de dominio (password y SKU),
// sin dependencias ni efectos secundarios.
package validation

import "strings"

// Result resultado de una validación: Valid y el mensaje de la primera regla incumplida.
type Result struct {
	Valid   bool
	Message string
}

// Caracteres especiales aceptados para la regla de password.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// ValidatePassword valida la fortaleza de un password. Las reglas se evalúan en
// orden fijo y se reporta la primera incumplida:
// longitud mínima 8, mayúscula, minúscula, dígito, carácter especial.
func ValidatePassword(password string) Result {
	if len(password) < 8 {
		return Result{Valid: false, Message: "el password debe tener al menos 8 caracteres"}
	}
	if !containsFunc(password, isUpper) {
		return Result{Valid: false, Message: "el password debe contener al menos una letra mayúscula"}
	}
	if !containsFunc(password, isLower) {
		return Result{Valid: false, Message: "el password debe contener al menos una letra minúscula"}
	}
	if !containsFunc(password, isDigit) {
		return Result{Valid: false, Message: "el password debe contener al menos un dígito"}
	}
	if !strings.ContainsAny(password, specialChars) {
		return Result{Valid: false, Message: "el password debe contener al menos un carácter especial"}
	}
	return Result{Valid: true, Message: "el password cumple los requisitos"}
}

// ValidateSKU valida el formato de un SKU:
// entre 5 y 20 caracteres, inicia con letra, no termina en guion,
// solo letras, dígitos y guiones.
func ValidateSKU(sku string) Result {
	if len(sku) < 5 || len(sku) > 20 {
		return Result{Valid: false, Message: "el SKU debe tener entre 5 y 20 caracteres"}
	}
	if !isLetter(rune(sku[0])) {
		return Result{Valid: false, Message: "el SKU debe iniciar con una letra"}
	}
	if strings.HasSuffix(sku, "-") {
		return Result{Valid: false, Message: "el SKU no debe terminar en guion"}
	}
	for _, r := range sku {
		if !isLetter(r) && !isDigit(r) && r != '-' {
			return Result{Valid: false, Message: "el SKU solo puede contener letras, números y guiones"}
		}
	}
	return Result{Valid: true, Message: "el formato del SKU es válido"}
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func containsFunc(s string, fn func(rune) bool) bool {
	for _, r := range s {
		if fn(r) {
			return true
		}
	}
	return false
}
