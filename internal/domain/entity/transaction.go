package entity

import "time"

// Tipos de transacción de inventario.
const (
	TransactionTypeAddition = "addition"
	TransactionTypeRemoval  = "removal"
	TransactionTypeAdjust   = "adjustment"
)

// TransactionTypeFor clasifica un cambio de cantidad: positivo es addition,
// cero o negativo es removal.
func TransactionTypeFor(quantityChange int) string {
	if quantityChange > 0 {
		return TransactionTypeAddition
	}
	return TransactionTypeRemoval
}

// InventoryTransaction es el registro inmutable de un cambio de stock (pista de auditoría).
// Se crea exactamente una vez por mutación de cantidad; nunca se actualiza ni se borra.
type InventoryTransaction struct {
	ID             string
	ProductID      string
	QuantityChange int    // positivo = entrada, negativo = salida
	Type           string // addition, removal, adjustment
	Reference      string // número de orden, nota de ajuste, etc.
	Notes          string
	UserID         string // vacío si el actor ya no existe
	Timestamp      time.Time
}
