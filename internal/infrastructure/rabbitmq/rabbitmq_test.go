package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotosfah/pilotos-api/internal/application/orders"
	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeChannel struct {
	key string
	msg amqp.Publishing
	err error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _ string, key string, _, _ bool, msg amqp.Publishing) error {
	f.key, f.msg = key, msg
	return f.err
}

type fakeAck struct {
	acked, nacked, requeued bool
}

func (a *fakeAck) Ack(uint64, bool) error { a.acked = true; return nil }
func (a *fakeAck) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked, a.requeued = true, requeue
	return nil
}
func (a *fakeAck) Reject(_ uint64, requeue bool) error {
	a.nacked, a.requeued = true, requeue
	return nil
}

type fakeNotifier struct {
	got []orders.OrderCreated
	err error
}

func (n *fakeNotifier) NotifyOrderCreated(_ context.Context, ev orders.OrderCreated) error {
	n.got = append(n.got, ev)
	return n.err
}

func sampleEvent() orders.OrderCreated {
	return orders.OrderCreated{
		OrderID:   9,
		UserID:    "uid-1",
		CreatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		Items:     []orders.OrderItem{{ProductID: 3, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(250)}},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Publisher
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderPublisher_PublicaPersistente(t *testing.T) {
	ch := &fakeChannel{}
	p := NewOrderPublisher(ch, "ordenes.creadas")

	require.NoError(t, p.NotifyOrderCreated(context.Background(), sampleEvent()))

	assert.Equal(t, "ordenes.creadas", ch.key)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "9", ch.msg.MessageId)

	var ev orders.OrderCreated
	require.NoError(t, json.Unmarshal(ch.msg.Body, &ev))
	assert.Equal(t, int64(9), ev.OrderID)
	assert.True(t, decimal.NewFromInt(250).Equal(ev.Items[0].PrecioUnitario))
}

func TestOrderPublisher_ErrorDelCanal(t *testing.T) {
	p := NewOrderPublisher(&fakeChannel{err: errors.New("canal cerrado")}, "q")

	assert.Error(t, p.NotifyOrderCreated(context.Background(), sampleEvent()))
}

// ──────────────────────────────────────────────────────────────────────────────
// Consumer
// ──────────────────────────────────────────────────────────────────────────────

func delivery(t *testing.T, body []byte, ack *fakeAck) amqp.Delivery {
	t.Helper()
	return amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body}
}

func TestOrderConsumer_AckSiNotifica(t *testing.T) {
	n := &fakeNotifier{}
	ack := &fakeAck{}
	body, _ := json.Marshal(sampleEvent())

	NewOrderConsumer(n, logger.Nop(), time.Second).Handle(context.Background(), delivery(t, body, ack))

	assert.True(t, ack.acked)
	require.Len(t, n.got, 1)
	assert.Equal(t, "uid-1", n.got[0].UserID)
}

func TestOrderConsumer_NackSinReencolarSiFalla(t *testing.T) {
	n := &fakeNotifier{err: errors.New("smtp caído")}
	ack := &fakeAck{}
	body, _ := json.Marshal(sampleEvent())

	NewOrderConsumer(n, logger.Nop(), time.Second).Handle(context.Background(), delivery(t, body, ack))

	assert.True(t, ack.nacked)
	assert.False(t, ack.requeued)
	assert.False(t, ack.acked)
}

func TestOrderConsumer_MensajeInvalido(t *testing.T) {
	n := &fakeNotifier{}
	ack := &fakeAck{}

	NewOrderConsumer(n, logger.Nop(), time.Second).Handle(context.Background(), delivery(t, []byte("no-json"), ack))

	assert.True(t, ack.nacked)
	assert.Empty(t, n.got)
}

func TestOrderConsumer_RunTerminaAlCerrarCanal(t *testing.T) {
	msgs := make(chan amqp.Delivery, 1)
	body, _ := json.Marshal(sampleEvent())
	ack := &fakeAck{}
	msgs <- delivery(t, body, ack)
	close(msgs)

	done := make(chan struct{})
	go func() {
		NewOrderConsumer(&fakeNotifier{}, logger.Nop(), time.Second).Run(context.Background(), msgs)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run no terminó")
	}
	assert.True(t, ack.acked)
}

type panicNotifier struct{}

func (panicNotifier) NotifyOrderCreated(context.Context, orders.OrderCreated) error {
	panic("plantilla rota")
}

func TestOrderConsumer_SinLoggerPanicoSeRechaza(t *testing.T) {
	ack := &fakeAck{}
	body, _ := json.Marshal(sampleEvent())

	assert.NotPanics(t, func() {
		NewOrderConsumer(panicNotifier{}, nil, time.Second).Handle(context.Background(), delivery(t, body, ack))
	})
	assert.True(t, ack.nacked)
	assert.False(t, ack.requeued)
}
