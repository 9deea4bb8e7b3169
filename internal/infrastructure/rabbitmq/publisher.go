package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/pilotosfah/pilotos-api/internal/application/orders"
)

var _ orders.Notifier = (*OrderPublisher)(nil)

// publishChannel subconjunto de *amqp.Channel usado al publicar.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// OrderPublisher encola la orden creada para que el worker de correo la procese.
type OrderPublisher struct {
	ch    publishChannel
	queue string
	now   func() time.Time
}

func NewOrderPublisher(ch publishChannel, queue string) *OrderPublisher {
	return &OrderPublisher{ch: ch, queue: queue, now: time.Now}
}

// NotifyOrderCreated publica el evento como mensaje persistente en la cola por defecto.
func (p *OrderPublisher) NotifyOrderCreated(ctx context.Context, ev orders.OrderCreated) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("rabbitmq: serializar orden %d: %w", ev.OrderID, err)
	}
	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now(),
		ContentType:  "application/json",
		MessageId:    strconv.FormatInt(ev.OrderID, 10),
		Type:         "orden.creada",
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("rabbitmq: publicar orden %d: %w", ev.OrderID, err)
	}
	return nil
}
