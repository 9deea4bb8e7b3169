package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/pilotosfah/pilotos-api/internal/application/orders"
	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

// OrderConsumer entrega cada orden encolada al notificador de correo.
// Mensajes ilegibles o cuyo envío falla se rechazan sin reencolar (van a la DLQ).
type OrderConsumer struct {
	handler orders.Notifier
	log     *logger.Logger
	timeout time.Duration
}

// NewOrderConsumer crea el consumidor; timeout acota cada envío (30s por defecto).
func NewOrderConsumer(handler orders.Notifier, log *logger.Logger, timeout time.Duration) *OrderConsumer {
	if log == nil {
		log = logger.Nop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OrderConsumer{handler: handler, log: log, timeout: timeout}
}

// Subscribe registra el consumidor con ack manual.
func Subscribe(ch *amqp.Channel, queue, tag string) (<-chan amqp.Delivery, error) {
	msgs, err := ch.Consume(
		queue,
		tag,
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: consumir %s: %w", queue, err)
	}
	return msgs, nil
}

// Run procesa mensajes hasta que ctx se cancele o el canal se cierre.
func (c *OrderConsumer) Run(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			c.Handle(ctx, msg)
		}
	}
}

// Handle procesa un mensaje y lo confirma o rechaza.
func (c *OrderConsumer) Handle(ctx context.Context, msg amqp.Delivery) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Msg("panic procesando mensaje de orden")
			_ = msg.Nack(false, false)
		}
	}()

	var ev orders.OrderCreated
	if err := json.Unmarshal(msg.Body, &ev); err != nil || ev.OrderID == 0 {
		c.log.Warn().Str("message_id", msg.MessageId).Msg("mensaje de orden inválido, se descarta")
		_ = msg.Nack(false, false)
		return
	}

	taskCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if err := c.handler.NotifyOrderCreated(taskCtx, ev); err != nil {
		c.log.Error().Err(err).Int64("orden_id", ev.OrderID).Msg("fallo notificando orden")
		_ = msg.Nack(false, false)
		return
	}
	c.log.Info().Int64("orden_id", ev.OrderID).Msg("orden notificada")
	_ = msg.Ack(false)
}
