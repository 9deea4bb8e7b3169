package mail

import (
	"fmt"

	"github.com/pilotosfah/pilotos-api/internal/application/ports"
	"github.com/pilotosfah/pilotos-api/pkg/config"
	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

// New elige el adaptador según MAIL_DRIVER.
func New(cfg config.MailConfig, log *logger.Logger) (ports.Mailer, error) {
	switch cfg.Driver {
	case "resend":
		return NewResendMailer(cfg.ResendAPIKey, "")
	case "smtp":
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("mail: MAIL_DRIVER=smtp requiere SMTP_HOST")
		}
		return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword), nil
	case "log", "":
		return NewLogMailer(log.Named("mail")), nil
	default:
		return nil, fmt.Errorf("mail: driver desconocido %q", cfg.Driver)
	}
}
