package mail

import (
	"context"

	"github.com/google/uuid"

	"github.com/pilotosfah/pilotos-api/internal/application/ports"
	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

var _ ports.Mailer = (*LogMailer)(nil)

// LogMailer sólo registra los correos; útil en desarrollo.
type LogMailer struct {
	log *logger.Logger
}

func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, e ports.Email) (string, error) {
	if err := validate(e); err != nil {
		return "", err
	}
	id := "log-" + uuid.NewString()
	m.log.Info().
		Str("id", id).
		Strs("to", e.To).
		Str("subject", e.Subject).
		Int("attachments", len(e.Attachments)).
		Msg("correo no enviado (MAIL_DRIVER=log)")
	return id, nil
}
