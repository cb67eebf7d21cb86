package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario identificado por SKU único.
type Product struct {
	ID                string
	SKU               string
	Name              string
	Description       string
	Price             decimal.Decimal // no negativo
	Quantity          int
	CategoryID        string // vacío si no tiene categoría
	LowStockThreshold int
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock indica si el producto está en o por debajo del umbral de stock bajo.
// Es el único predicado de stock bajo del sistema: el disparo de alertas y el
// reporte usan exactamente esta semántica (cantidad == umbral cuenta como bajo).
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.LowStockThreshold
}

// Category representa una categoría de productos (nombre único).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
