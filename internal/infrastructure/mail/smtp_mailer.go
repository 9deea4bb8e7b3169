package mail

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/pilotosfah/pilotos-api/internal/application/ports"
)

var _ ports.Mailer = (*SMTPMailer)(nil)

// SMTPMailer envía correos por SMTP con gomail.
type SMTPMailer struct {
	send func(*gomail.Message) error
}

// NewSMTPMailer construye el adaptador sobre un servidor SMTP autenticado.
func NewSMTPMailer(host string, port int, user, password string) *SMTPMailer {
	d := gomail.NewDialer(host, port, user, password)
	return &SMTPMailer{send: func(m *gomail.Message) error { return d.DialAndSend(m) }}
}

// NewSMTPMailerWithSender usa un gomail.Sender ya abierto (pruebas o conexiones persistentes).
func NewSMTPMailerWithSender(s gomail.Sender) *SMTPMailer {
	return &SMTPMailer{send: func(m *gomail.Message) error { return gomail.Send(s, m) }}
}

// Send arma el mensaje MIME y lo envía. SMTP no asigna id, se genera uno local.
func (m *SMTPMailer) Send(ctx context.Context, e ports.Email) (string, error) {
	if err := validate(e); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := uuid.NewString()
	msg := gomail.NewMessage()
	msg.SetHeader("From", e.From)
	msg.SetHeader("To", e.To...)
	msg.SetHeader("Subject", e.Subject)
	msg.SetHeader("X-Entity-Ref-ID", id)
	if e.ReplyTo != "" {
		msg.SetHeader("Reply-To", e.ReplyTo)
	}

	switch {
	case e.Text != "" && e.HTML != "":
		msg.SetBody("text/plain", e.Text)
		msg.AddAlternative("text/html", e.HTML)
	case e.HTML != "":
		msg.SetBody("text/html", e.HTML)
	default:
		msg.SetBody("text/plain", e.Text)
	}

	for _, a := range e.Attachments {
		content := a.Content
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
		}
		if a.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}))
		}
		msg.Attach(a.Filename, settings...)
	}

	if err := m.send(msg); err != nil {
		return "", fmt.Errorf("mail: smtp: %w", err)
	}
	return id, nil
}
