package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización de cantidad y el
// registro de auditoría se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// Notifier es el colaborador externo de alertas de stock bajo.
// Devuelve si la entrega se intentó con éxito; nunca propaga errores: un fallo
// del transporte no puede afectar la respuesta del ajuste de stock.
type Notifier interface {
	NotifyLowStock(product *entity.Product) bool
}
