package notify

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/pilotosfah/pilotos-api/internal/application/orders"
	"github.com/pilotosfah/pilotos-api/internal/application/ports"
	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ReceiptRenderer genera el comprobante en PDF de una compra.
type ReceiptRenderer interface {
	RenderReceipt(ctx context.Context, r Receipt) ([]byte, error)
}

// Sender remitente y buzón interno.
type Sender struct {
	From    string   // "Pilotos FAH <no-reply@...>"
	ReplyTo string
	AdminTo []string
}

// DonationReceived solicitud de donación recién registrada.
type DonationReceived struct {
	Nombre      string    `json:"nombre"`
	Telefono    string    `json:"telefono"`
	Correo      string    `json:"correo"`
	Dia         string    `json:"dia"`
	Horario     string    `json:"horario"`
	Descripcion string    `json:"descripcion"`
	RecibidaEn  time.Time `json:"recibida_en"`
}

// ContactMessage mensaje del formulario de contacto.
type ContactMessage struct {
	Nombre   string `json:"nombre"`
	Correo   string `json:"correo"`
	Telefono string `json:"telefono"`
	Asunto   string `json:"asunto"`
	Mensaje  string `json:"mensaje"`
}

// DonationReceipt comprobante de una donación monetaria subido por un usuario.
type DonationReceipt struct {
	Nombre     string
	Correo     string
	Monto      string
	Comentario string
	RecibidoEn time.Time
	Archivo    ports.Attachment
}

// MontoTexto "L.{monto}" o "No especificado".
func (d DonationReceipt) MontoTexto() string {
	if strings.TrimSpace(d.Monto) == "" {
		return "No especificado"
	}
	return "L." + strings.TrimSpace(d.Monto)
}

// MailNotifier arma y envía los correos transaccionales del sitio.
type MailNotifier struct {
	mailer   ports.Mailer
	receipts ReceiptRenderer
	sender   Sender
	tpl      *template.Template
	log      *logger.Logger
}

// NewMailNotifier construye el notificador. receipts puede ser nil (sin PDF adjunto).
func NewMailNotifier(mailer ports.Mailer, receipts ReceiptRenderer, sender Sender, log *logger.Logger) (*MailNotifier, error) {
	if log == nil {
		log = logger.Nop()
	}
	tpl, err := template.New("mail").Funcs(template.FuncMap{
		"money": Money,
		"fecha": func(t time.Time) string { return t.Format("02/01/2006 15:04") },
		"year":  func() int { return time.Now().Year() },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("plantillas de correo: %w", err)
	}
	return &MailNotifier{mailer: mailer, receipts: receipts, sender: sender, tpl: tpl, log: log}, nil
}

var _ orders.Notifier = (*MailNotifier)(nil)

// NotifyOrderCreated avisa al buzón interno y, si hay email, confirma al cliente con el PDF adjunto.
func (n *MailNotifier) NotifyOrderCreated(ctx context.Context, ev orders.OrderCreated) error {
	r := NewReceipt(ev)
	var errs []error

	if len(n.sender.AdminTo) > 0 {
		html, err := n.render("order_admin.html", r)
		if err != nil {
			return err
		}
		errs = append(errs, n.send(ctx, ports.Email{
			To:      n.sender.AdminTo,
			Subject: fmt.Sprintf("Nueva compra #%d", r.OrderID),
			HTML:    html,
		}))
	}

	if r.Email != "" {
		html, err := n.render("order_customer.html", r)
		if err != nil {
			return err
		}
		msg := ports.Email{
			To:      []string{r.Email},
			Subject: fmt.Sprintf("Confirmación de compra #%d", r.OrderID),
			HTML:    html,
		}
		if n.receipts != nil {
			pdf, err := n.receipts.RenderReceipt(ctx, r)
			if err != nil {
				n.log.Warn().Err(err).Int64("orden_id", r.OrderID).Msg("no se pudo generar el comprobante PDF")
			} else {
				msg.Attachments = []ports.Attachment{{
					Filename:    fmt.Sprintf("comprobante-orden-%d.pdf", r.OrderID),
					Content:     pdf,
					ContentType: "application/pdf",
				}}
			}
		}
		errs = append(errs, n.send(ctx, msg))
	}
	return errors.Join(errs...)
}

// NotifyDonation avisa al buzón interno y agradece al donante.
func (n *MailNotifier) NotifyDonation(ctx context.Context, d DonationReceived) error {
	if d.RecibidaEn.IsZero() {
		d.RecibidaEn = time.Now()
	}
	var errs []error
	if len(n.sender.AdminTo) > 0 {
		html, err := n.render("donation_admin.html", d)
		if err != nil {
			return err
		}
		nombre := d.Nombre
		if nombre == "" {
			nombre = "Anónimo"
		}
		errs = append(errs, n.send(ctx, ports.Email{
			To:      n.sender.AdminTo,
			Subject: "Nueva donación: " + nombre,
			HTML:    html,
			Text: fmt.Sprintf("Nombre: %s\nCorreo: %s\nTeléfono: %s\nDía: %s\nHorario: %s\nDescripción: %s",
				d.Nombre, d.Correo, d.Telefono, d.Dia, d.Horario, d.Descripcion),
		}))
	}
	if d.Correo != "" {
		html, err := n.render("donation_donor.html", d)
		if err != nil {
			return err
		}
		errs = append(errs, n.send(ctx, ports.Email{
			To:      []string{d.Correo},
			Subject: "Gracias por tu donación, Pilotos FAH",
			HTML:    html,
		}))
	}
	return errors.Join(errs...)
}

// NotifyContactForm reenvía el formulario al buzón interno y confirma al remitente.
func (n *MailNotifier) NotifyContactForm(ctx context.Context, m ContactMessage) error {
	var errs []error
	if len(n.sender.AdminTo) > 0 {
		html, err := n.render("contact_admin.html", m)
		if err != nil {
			return err
		}
		errs = append(errs, n.send(ctx, ports.Email{
			To:      n.sender.AdminTo,
			ReplyTo: m.Correo,
			Subject: strings.TrimSpace("Nuevo formulario de contacto " + m.Nombre),
			HTML:    html,
			Text:    m.Mensaje,
		}))
	}
	if m.Correo != "" {
		html, err := n.render("contact_user.html", m)
		if err != nil {
			return err
		}
		errs = append(errs, n.send(ctx, ports.Email{
			To:      []string{m.Correo},
			Subject: "Confirmación de envío de formulario - Pilotos FAH",
			HTML:    html,
		}))
	}
	return errors.Join(errs...)
}

// NotifyDonationReceipt reenvía el comprobante adjunto al buzón interno y agradece al donante.
// Sin buzón interno el comprobante no tiene destino y se devuelve error.
func (n *MailNotifier) NotifyDonationReceipt(ctx context.Context, d DonationReceipt) error {
	if len(n.sender.AdminTo) == 0 {
		return errors.New("comprobante de donación: no hay destinatarios internos")
	}
	if d.Nombre == "" {
		d.Nombre = "Anónimo"
	}
	if d.RecibidoEn.IsZero() {
		d.RecibidoEn = time.Now()
	}
	html, err := n.render("receipt_admin.html", d)
	if err != nil {
		return err
	}
	if err := n.send(ctx, ports.Email{
		To:          n.sender.AdminTo,
		ReplyTo:     d.Correo,
		Subject:     "Comprobante de donación",
		HTML:        html,
		Text:        fmt.Sprintf("Nombre: %s\nCorreo: %s\nMonto: %s", d.Nombre, d.Correo, d.MontoTexto()),
		Attachments: []ports.Attachment{d.Archivo},
	}); err != nil {
		return err
	}

	if !reEmail.MatchString(d.Correo) {
		return nil
	}
	html, err = n.render("receipt_donor.html", d)
	if err != nil {
		return err
	}
	// El agradecimiento es secundario: su fallo no invalida el envío.
	if err := n.send(ctx, ports.Email{
		To:      []string{d.Correo},
		Subject: "¡Gracias por tu donación!",
		HTML:    html,
	}); err != nil {
		n.log.Warn().Err(err).Msg("agradecimiento de donación no enviado")
	}
	return nil
}

func (n *MailNotifier) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := n.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("renderizar %s: %w", name, err)
	}
	return buf.String(), nil
}

func (n *MailNotifier) send(ctx context.Context, e ports.Email) error {
	e.From = n.sender.From
	if e.ReplyTo == "" {
		e.ReplyTo = n.sender.ReplyTo
	}
	id, err := n.mailer.Send(ctx, e)
	if err != nil {
		return fmt.Errorf("enviar %q: %w", e.Subject, err)
	}
	n.log.Info().Str("email_id", id).Str("subject", e.Subject).Int("to", len(e.To)).Msg("correo enviado")
	return nil
}
