package mail

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/resend/resend-go/v2"

	"github.com/pilotosfah/pilotos-api/internal/application/ports"
)

var _ ports.Mailer = (*ResendMailer)(nil)

// ResendMailer envía correos con la API de Resend.
type ResendMailer struct {
	client *resend.Client
}

// NewResendMailer construye el adaptador. baseURL vacío usa el endpoint oficial.
func NewResendMailer(apiKey, baseURL string) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, errors.New("mail: RESEND_API_KEY no configurado")
	}
	client := resend.NewClient(apiKey)
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("mail: base url: %w", err)
		}
		client.BaseURL = u
	}
	return &ResendMailer{client: client}, nil
}

// Send envía el correo y devuelve el id asignado por Resend.
func (m *ResendMailer) Send(ctx context.Context, e ports.Email) (string, error) {
	if err := validate(e); err != nil {
		return "", err
	}
	req := &resend.SendEmailRequest{
		From:    e.From,
		To:      e.To,
		Subject: e.Subject,
		Html:    e.HTML,
		Text:    e.Text,
		ReplyTo: e.ReplyTo,
	}
	for _, a := range e.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Content:     a.Content,
			Filename:    a.Filename,
			ContentType: a.ContentType,
		})
	}
	sent, err := m.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("mail: resend: %w", err)
	}
	return sent.Id, nil
}

func validate(e ports.Email) error {
	if e.From == "" {
		return errors.New("mail: remitente vacío")
	}
	if len(e.To) == 0 {
		return errors.New("mail: sin destinatarios")
	}
	if e.HTML == "" && e.Text == "" {
		return errors.New("mail: cuerpo vacío")
	}
	return nil
}
