package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre
// PostgreSQL. La tabla es solo-inserción: no hay Update ni Delete.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción de inventario.
func (r *TransactionRepo) Create(tx *entity.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions (id, product_id, quantity_change, transaction_type, reference, notes, user_id, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ProductID, tx.QuantityChange, tx.Type, tx.Reference, tx.Notes,
		nullableID(tx.UserID), tx.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByProduct lista las transacciones de un producto, más recientes primero
// (desempate por id para un orden estable), con el username del actor si aún existe.
func (r *TransactionRepo) ListByProduct(productID string) ([]*repository.TransactionWithUser, error) {
	query := `
		SELECT t.id, t.product_id, t.quantity_change, t.transaction_type, t.reference, t.notes,
		       COALESCE(t.user_id::text, ''), COALESCE(u.username, ''), t.timestamp
		FROM inventory_transactions t
		LEFT JOIN users u ON u.id = t.user_id
		WHERE t.product_id = $1
		ORDER BY t.timestamp DESC, t.id DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*repository.TransactionWithUser
	for rows.Next() {
		var rec repository.TransactionWithUser
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.QuantityChange, &rec.Type,
			&rec.Reference, &rec.Notes, &rec.UserID, &rec.Username, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
