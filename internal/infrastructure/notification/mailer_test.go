package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/pkg/config"
)

func TestNotifyLowStockDisabled(t *testing.T) {
	mailer := NewMailer(config.SMTPConfig{Enabled: false})

	sent := mailer.NotifyLowStock(&entity.Product{SKU: "PROD-001", Name: "Tornillos", Quantity: 2, LowStockThreshold: 10})

	assert.False(t, sent)
}

func TestNotifyLowStockSinDestinatarios(t *testing.T) {
	mailer := NewMailer(config.SMTPConfig{Enabled: true, Host: "localhost", Port: 2525})

	sent := mailer.NotifyLowStock(&entity.Product{SKU: "PROD-001", Name: "Tornillos", Quantity: 2, LowStockThreshold: 10})

	assert.False(t, sent)
}

func TestLowStockBody(t *testing.T) {
	body := lowStockBody(&entity.Product{SKU: "PROD-001", Name: "Tornillos", Quantity: 3, LowStockThreshold: 10})

	assert.Contains(t, body, "Tornillos")
	assert.Contains(t, body, "PROD-001")
	assert.Contains(t, body, "Cantidad actual: 3")
	assert.Contains(t, body, "Umbral configurado: 10")
}
