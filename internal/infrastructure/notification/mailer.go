package notification

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/pkg/config"
)

// maxAttempts intentos de envío antes de rendirse.
const maxAttempts = 3

// Mailer envía alertas de stock bajo por SMTP usando gomail.
// Si las notificaciones están deshabilitadas en la configuración,
// todos los envíos son no-op.
type Mailer struct {
	cfg config.SMTPConfig
}

var _ inventory.Notifier = (*Mailer)(nil)

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// NotifyLowStock envía la alerta de stock bajo para un producto.
// Devuelve true si el correo salió (o si las notificaciones están
// deshabilitadas o no hay destinatarios configurados); los fallos de
// SMTP se registran pero nunca interrumpen al que llama.
func (m *Mailer) NotifyLowStock(product *entity.Product) bool {
	if !m.cfg.Enabled {
		return false
	}

	recipients := m.cfg.RecipientList()
	if len(recipients) == 0 {
		log.Warn().Str("sku", product.SKU).Msg("alerta de stock bajo sin destinatarios configurados")
		return false
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", fmt.Sprintf("Alerta de stock bajo: %s", product.Name))
	msg.SetBody("text/plain", lowStockBody(product))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := dialer.DialAndSend(msg); err != nil {
			lastErr = err
			log.Warn().Err(err).
				Int("attempt", attempt).
				Str("sku", product.SKU).
				Msg("fallo al enviar alerta de stock bajo")
			continue
		}
		log.Info().
			Str("sku", product.SKU).
			Int("quantity", product.Quantity).
			Msg("alerta de stock bajo enviada")
		return true
	}

	log.Error().Err(lastErr).
		Str("sku", product.SKU).
		Msg("alerta de stock bajo no enviada tras varios intentos")
	return false
}

func lowStockBody(product *entity.Product) string {
	return fmt.Sprintf(
		"El producto %s (SKU %s) está por debajo del umbral de stock.\n\n"+
			"Cantidad actual: %d\n"+
			"Umbral configurado: %d\n\n"+
			"Se recomienda reabastecer el inventario.",
		product.Name, product.SKU, product.Quantity, product.LowStockThreshold,
	)
}
