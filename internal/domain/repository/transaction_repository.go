package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// TransactionWithUser es una transacción de inventario junto con el username
// del actor. Username queda vacío si el registro del usuario ya no existe.
type TransactionWithUser struct {
	entity.InventoryTransaction
	Username string
}

// TransactionRepository define el puerto de persistencia para la pista de
// auditoría. Solo inserción y lectura: las transacciones nunca se modifican.
type TransactionRepository interface {
	Create(tx *entity.InventoryTransaction) error
	ListByProduct(productID string) ([]*TransactionWithUser, error)
}
