package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotosfah/pilotos-api/internal/application/orders"
	"github.com/pilotosfah/pilotos-api/internal/application/ports"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type outbox struct {
	mu     sync.Mutex
	sent   []ports.Email
	failTo string
}

func (o *outbox) Send(ctx context.Context, e ports.Email) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.failTo != "" && len(e.To) > 0 && e.To[0] == o.failTo {
		return "", errors.New("rechazado")
	}
	o.sent = append(o.sent, e)
	return "msg-1", nil
}

type staticReceipt struct{ err error }

func (s staticReceipt) RenderReceipt(ctx context.Context, r Receipt) ([]byte, error) {
	return []byte("%PDF-1.4"), s.err
}

func sampleOrder() orders.OrderCreated {
	return orders.OrderCreated{
		OrderID:  42,
		UserID:   "uid-1",
		Customer: &orders.Customer{Nombre: "Ana", Email: "ana@x.com"},
		Items: []orders.OrderItem{
			{ProductID: 1, Nombre: "Camiseta", Cantidad: 2, PrecioUnitario: decimal.NewFromInt(100), Detalle: "Talla: XL, Nombre: Pérez Numero: 7"},
		},
	}
}

func newNotifier(t *testing.T, box *outbox, receipts ReceiptRenderer) *MailNotifier {
	t.Helper()
	n, err := NewMailNotifier(box, receipts, Sender{
		From:    "Pilotos FAH <no-reply@pilotosfah.com>",
		ReplyTo: "no-reply@pilotosfah.com",
		AdminTo: []string{"admin@pilotosfah.com"},
	}, nil)
	require.NoError(t, err)
	return n
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestNotifyOrderCreated_AdminYClienteConPDF(t *testing.T) {
	box := &outbox{}
	n := newNotifier(t, box, staticReceipt{})

	require.NoError(t, n.NotifyOrderCreated(context.Background(), sampleOrder()))
	require.Len(t, box.sent, 2)

	admin := box.sent[0]
	assert.Equal(t, "Nueva compra #42", admin.Subject)
	assert.Equal(t, []string{"admin@pilotosfah.com"}, admin.To)
	assert.Contains(t, admin.HTML, "Camiseta")
	assert.Contains(t, admin.HTML, "XL")
	assert.Contains(t, admin.HTML, "L. 200.00")

	cliente := box.sent[1]
	assert.Equal(t, "Confirmación de compra #42", cliente.Subject)
	assert.Equal(t, "Pilotos FAH <no-reply@pilotosfah.com>", cliente.From)
	assert.Equal(t, "no-reply@pilotosfah.com", cliente.ReplyTo)
	assert.Contains(t, cliente.HTML, "L. 30.00")
	assert.Contains(t, cliente.HTML, "L. 170.00")
	require.Len(t, cliente.Attachments, 1)
	assert.Equal(t, "comprobante-orden-42.pdf", cliente.Attachments[0].Filename)
}

func TestNotifyOrderCreated_SinCliente_SoloAdmin(t *testing.T) {
	box := &outbox{}
	n := newNotifier(t, box, nil)
	ev := sampleOrder()
	ev.Customer = nil

	require.NoError(t, n.NotifyOrderCreated(context.Background(), ev))
	require.Len(t, box.sent, 1)
	assert.Equal(t, "Nueva compra #42", box.sent[0].Subject)
}

func TestNotifyOrderCreated_FalloDelPDF_EnviaSinAdjunto(t *testing.T) {
	box := &outbox{}
	n := newNotifier(t, box, staticReceipt{err: errors.New("fuente")})

	require.NoError(t, n.NotifyOrderCreated(context.Background(), sampleOrder()))
	require.Len(t, box.sent, 2)
	assert.Empty(t, box.sent[1].Attachments)
}

func TestNotifyOrderCreated_FalloDeUnEnvio_ContinuaYReporta(t *testing.T) {
	box := &outbox{failTo: "admin@pilotosfah.com"}
	n := newNotifier(t, box, nil)

	err := n.NotifyOrderCreated(context.Background(), sampleOrder())
	assert.Error(t, err)
	require.Len(t, box.sent, 1)
	assert.Equal(t, []string{"ana@x.com"}, box.sent[0].To)
}

func TestNotifyDonation_AdminYDonante(t *testing.T) {
	box := &outbox{}
	n := newNotifier(t, box, nil)

	err := n.NotifyDonation(context.Background(), DonationReceived{
		Nombre: "Luis", Correo: "luis@x.com", Telefono: "9999-0000",
		Dia: "2026-11-02", Horario: "09:30", Descripcion: "Dos guantes",
	})
	require.NoError(t, err)
	require.Len(t, box.sent, 2)
	assert.Equal(t, "Nueva donación: Luis", box.sent[0].Subject)
	assert.Contains(t, box.sent[0].HTML, "Dos guantes")
	assert.Equal(t, []string{"luis@x.com"}, box.sent[1].To)
}

func TestNotifyContactForm_ResponderAlRemitente(t *testing.T) {
	box := &outbox{}
	n := newNotifier(t, box, nil)

	err := n.NotifyContactForm(context.Background(), ContactMessage{Nombre: "Eva", Correo: "eva@x.com", Mensaje: "Hola"})
	require.NoError(t, err)
	require.Len(t, box.sent, 2)
	assert.Equal(t, "eva@x.com", box.sent[0].ReplyTo)
	assert.Equal(t, "Confirmación de envío de formulario - Pilotos FAH", box.sent[1].Subject)
}

func TestNotifyOrderCreated_EscapaHTML(t *testing.T) {
	box := &outbox{}
	n := newNotifier(t, box, nil)
	ev := sampleOrder()
	ev.Items[0].Nombre = "<script>x</script>"

	require.NoError(t, n.NotifyOrderCreated(context.Background(), ev))
	assert.NotContains(t, box.sent[0].HTML, "<script>")
}

func sampleReceipt() DonationReceipt {
	return DonationReceipt{
		Nombre: "Ana",
		Correo: "ana@x.com",
		Monto:  "500",
		Archivo: ports.Attachment{
			Filename:    "comprobante.pdf",
			Content:     []byte("%PDF-1.4"),
			ContentType: "application/pdf",
		},
	}
}

func TestNotifyDonationReceipt_AdjuntoAlAdminYAgradecimiento(t *testing.T) {
	box := &outbox{}
	n := newNotifier(t, box, nil)

	require.NoError(t, n.NotifyDonationReceipt(context.Background(), sampleReceipt()))

	require.Len(t, box.sent, 2)
	admin := box.sent[0]
	assert.Equal(t, "Comprobante de donación", admin.Subject)
	assert.Equal(t, "ana@x.com", admin.ReplyTo)
	require.Len(t, admin.Attachments, 1)
	assert.Equal(t, "comprobante.pdf", admin.Attachments[0].Filename)
	assert.Contains(t, admin.HTML, "L.500")
	assert.Equal(t, []string{"ana@x.com"}, box.sent[1].To)
	assert.Equal(t, "¡Gracias por tu donación!", box.sent[1].Subject)
}

func TestNotifyDonationReceipt_CorreoInvalidoSoloAdmin(t *testing.T) {
	box := &outbox{}
	n := newNotifier(t, box, nil)
	d := sampleReceipt()
	d.Correo = "sin-arroba"
	d.Monto = ""

	require.NoError(t, n.NotifyDonationReceipt(context.Background(), d))

	require.Len(t, box.sent, 1)
	assert.Contains(t, box.sent[0].HTML, "No especificado")
}

func TestNotifyDonationReceipt_FalloAlAdminEsError(t *testing.T) {
	box := &outbox{failTo: "admin@pilotosfah.com"}
	n := newNotifier(t, box, nil)

	err := n.NotifyDonationReceipt(context.Background(), sampleReceipt())

	require.Error(t, err)
	assert.Empty(t, box.sent)
}

func TestNotifyDonationReceipt_FalloDelAgradecimientoNoEsError(t *testing.T) {
	box := &outbox{failTo: "ana@x.com"}
	n := newNotifier(t, box, nil)

	require.NoError(t, n.NotifyDonationReceipt(context.Background(), sampleReceipt()))
	require.Len(t, box.sent, 1)
}
