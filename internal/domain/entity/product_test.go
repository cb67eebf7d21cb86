package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

func TestProduct_IsLowStock(t *testing.T) {
	cases := []struct {
		name      string
		quantity  int
		threshold int
		want      bool
	}{
		{"por encima del umbral", 20, 10, false},
		{"exactamente en el umbral", 10, 10, true},
		{"por debajo del umbral", 5, 10, true},
		{"cantidad cero", 0, 10, true},
		{"umbral cero con stock", 3, 0, false},
		{"umbral cero sin stock", 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &entity.Product{Quantity: tc.quantity, LowStockThreshold: tc.threshold}
			assert.Equal(t, tc.want, p.IsLowStock())
		})
	}
}

func TestTransactionTypeFor(t *testing.T) {
	assert.Equal(t, entity.TransactionTypeAddition, entity.TransactionTypeFor(5))
	assert.Equal(t, entity.TransactionTypeRemoval, entity.TransactionTypeFor(-5))
	// Un cambio de cero se clasifica como removal (regla "positivo = addition, resto = removal").
	assert.Equal(t, entity.TransactionTypeRemoval, entity.TransactionTypeFor(0))
}

func TestUser_HasPermission(t *testing.T) {
	user := &entity.User{
		Role: &entity.Role{
			Name: "manager",
			Permissions: []entity.Permission{
				{Name: entity.PermAdjustStock},
				{Name: entity.PermViewReports},
			},
		},
	}
	assert.True(t, user.HasPermission(entity.PermAdjustStock))
	assert.False(t, user.HasPermission(entity.PermManageProducts))

	sinRol := &entity.User{}
	assert.False(t, sinRol.HasPermission(entity.PermAdjustStock),
		"sin rol cargado no debe conceder permisos")
}
