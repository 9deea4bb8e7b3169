package ports

import "context"

// Attachment adjunto de un correo.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

// Email mensaje transaccional ya renderizado.
type Email struct {
	From        string
	To          []string
	ReplyTo     string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// Mailer envía correos transaccionales y devuelve el id asignado por el proveedor.
type Mailer interface {
	Send(ctx context.Context, email Email) (string, error)
}
