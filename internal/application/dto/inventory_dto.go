package dto

// AdjustStockRequest body para POST /inventory/products/:id/adjust.
type AdjustStockRequest struct {
	QuantityChange int    `json:"quantity_change"`
	Reference      string `json:"reference" validate:"omitempty,max=100"`
	Notes          string `json:"notes"`
}

// AdjustStockResponse salida del ajuste de stock (200).
type AdjustStockResponse struct {
	ID          string `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	OldQuantity int    `json:"old_quantity"`
	NewQuantity int    `json:"new_quantity"`
	Change      int    `json:"change"`
}

// TransactionResponse un registro del historial de transacciones de un producto.
// User es null si el actor ya no existe.
type TransactionResponse struct {
	ID             string  `json:"id"`
	QuantityChange int     `json:"quantity_change"`
	Type           string  `json:"transaction_type"`
	Reference      string  `json:"reference"`
	Notes          string  `json:"notes"`
	User           *string `json:"user"`
	Timestamp      string  `json:"timestamp"`
}
