package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// UseCase ajusta stock de productos y consulta su historial de transacciones.
// El ajuste es transaccional: bloquea la fila del producto (SELECT FOR UPDATE)
// y escribe cantidad + transacción en la misma unidad de trabajo.
type UseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	txLogRepo   repository.TransactionRepository
	notifier    Notifier
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	txLogRepo repository.TransactionRepository,
	notifier Notifier,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		txLogRepo:   txLogRepo,
		notifier:    notifier,
	}
}

// AdjustStock aplica quantityChange al producto y registra la transacción de
// auditoría, todo dentro de una transacción con bloqueo de fila. Después del
// commit evalúa el cruce del umbral de stock bajo con la cantidad PREVIA al
// cambio: la alerta se dispara solo en la transición a stock bajo, una vez.
func (uc *UseCase) AdjustStock(ctx context.Context, productID string, in dto.AdjustStockRequest, actingUser *entity.User) (*dto.AdjustStockResponse, error) {
	var adjusted entity.Product
	var oldQuantity int

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		oldQuantity = product.Quantity
		product.Quantity += in.QuantityChange

		if err := productRepo.UpdateQuantity(product.ID, product.Quantity); err != nil {
			return err
		}

		transaction := &entity.InventoryTransaction{
			ID:             uuid.New().String(),
			ProductID:      product.ID,
			QuantityChange: in.QuantityChange,
			Type:           entity.TransactionTypeFor(in.QuantityChange),
			Reference:      in.Reference,
			Notes:          in.Notes,
			UserID:         actingUser.ID,
			Timestamp:      time.Now(),
		}
		if err := txRepo.Create(transaction); err != nil {
			return err
		}

		adjusted = *product
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.maybeNotifyLowStock(&adjusted, oldQuantity)

	log.Info().
		Str("product", adjusted.Name).
		Int("old_quantity", oldQuantity).
		Int("new_quantity", adjusted.Quantity).
		Msg("stock ajustado")

	return &dto.AdjustStockResponse{
		ID:          adjusted.ID,
		SKU:         adjusted.SKU,
		Name:        adjusted.Name,
		OldQuantity: oldQuantity,
		NewQuantity: adjusted.Quantity,
		Change:      in.QuantityChange,
	}, nil
}

// maybeNotifyLowStock dispara la alerta solo cuando el producto cruza el umbral:
// antes del cambio NO estaba en stock bajo y después sí. Un producto que ya
// estaba bajo no vuelve a alertar en ajustes posteriores.
func (uc *UseCase) maybeNotifyLowStock(product *entity.Product, oldQuantity int) {
	before := *product
	before.Quantity = oldQuantity
	if before.IsLowStock() || !product.IsLowStock() {
		return
	}
	if !uc.notifier.NotifyLowStock(product) {
		log.Warn().
			Str("sku", product.SKU).
			Int("quantity", product.Quantity).
			Msg("alerta de stock bajo no entregada")
	}
}

// GetProductTransactions devuelve el historial del producto ordenado por fecha
// descendente, con el username del actor o null si el registro ya no existe.
func (uc *UseCase) GetProductTransactions(productID string) ([]dto.TransactionResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	records, err := uc.txLogRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(records))
	for _, rec := range records {
		var username *string
		if rec.Username != "" {
			u := rec.Username
			username = &u
		}
		out = append(out, dto.TransactionResponse{
			ID:             rec.ID,
			QuantityChange: rec.QuantityChange,
			Type:           rec.Type,
			Reference:      rec.Reference,
			Notes:          rec.Notes,
			User:           username,
			Timestamp:      rec.Timestamp.Format(time.RFC3339),
		})
	}
	return out, nil
}
