package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-api/internal/domain/validation"
)

func TestValidatePassword_ReglasEnOrden(t *testing.T) {
	cases := []struct {
		name     string
		password string
		valid    bool
		contains string // fragmento esperado del mensaje
	}{
		{"muy corto", "Ab1!", false, "8 caracteres"},
		{"sin mayúscula", "abcdef1!", false, "mayúscula"},
		{"sin minúscula", "ABCDEF1!", false, "minúscula"},
		{"sin dígito", "Abcdefg!", false, "dígito"},
		{"sin especial", "Abcdefg1", false, "especial"},
		{"válido", "Abcdef1!", true, "cumple"},
		{"válido con otros especiales", `Zyxwvu9"`, true, "cumple"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := validation.ValidatePassword(tc.password)
			assert.Equal(t, tc.valid, res.Valid)
			assert.Contains(t, res.Message, tc.contains)
		})
	}
}

// Un password corto que además incumple otras reglas reporta la longitud:
// las reglas se evalúan en orden fijo y gana la primera incumplida.
func TestValidatePassword_PrimeraReglaGana(t *testing.T) {
	res := validation.ValidatePassword("abc")
	assert.False(t, res.Valid)
	assert.Contains(t, res.Message, "8 caracteres")
}

func TestValidateSKU(t *testing.T) {
	cases := []struct {
		name  string
		sku   string
		valid bool
	}{
		{"válido simple", "ABC12", true},
		{"válido con guiones", "PROD-001-XL", true},
		{"válido longitud máxima", "A" + strings.Repeat("1", 19), true},
		{"muy corto", "AB12", false},
		{"muy largo", "A" + strings.Repeat("1", 20), false},
		{"inicia con dígito", "1PROD-001", false},
		{"inicia con guion", "-PROD-001", false},
		{"termina en guion", "PROD-001-", false},
		{"carácter inválido", "PROD_001", false},
		{"con espacio", "PROD 001", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := validation.ValidateSKU(tc.sku)
			assert.Equal(t, tc.valid, res.Valid, "sku=%q msg=%q", tc.sku, res.Message)
		})
	}
}

// Mutar una propiedad de un SKU válido lo invalida (propiedades del formato).
func TestValidateSKU_MutacionesInvalidan(t *testing.T) {
	base := "PROD-100"
	assert.True(t, validation.ValidateSKU(base).Valid)

	assert.False(t, validation.ValidateSKU(base[:4]).Valid, "recortado por debajo de 5")
	assert.False(t, validation.ValidateSKU("9"+base[1:]).Valid, "primera letra reemplazada por dígito")
	assert.False(t, validation.ValidateSKU(base+"-").Valid, "guion agregado al final")
	assert.False(t, validation.ValidateSKU(base+"!").Valid, "carácter fuera del alfabeto permitido")
}
