package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Broker conexión y canal compartidos por publicador y consumidor.
type Broker struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Queue   string
}

// Dial abre la conexión y declara la cola de notificaciones con su cola de mensajes muertos.
func Dial(url, queue string) (*Broker, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: channel: %w", err)
	}
	b := &Broker{Conn: conn, Channel: ch, Queue: queue}
	if err := b.SetupQueues(); err != nil {
		b.Close()
		return nil, err
	}
	return b, nil
}

// DeadLetterQueue nombre de la cola donde terminan los mensajes rechazados.
func (b *Broker) DeadLetterQueue() string {
	return b.Queue + ".dlq"
}

// SetupQueues declara ambas colas como durables.
func (b *Broker) SetupQueues() error {
	dlx := b.Queue + ".dlx"
	if err := b.Channel.ExchangeDeclare(
		dlx,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("rabbitmq: declarar %s: %w", dlx, err)
	}
	if _, err := b.Channel.QueueDeclare(b.DeadLetterQueue(), true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq: declarar %s: %w", b.DeadLetterQueue(), err)
	}
	if err := b.Channel.QueueBind(b.DeadLetterQueue(), b.DeadLetterQueue(), dlx, false, nil); err != nil {
		return fmt.Errorf("rabbitmq: bind %s: %w", b.DeadLetterQueue(), err)
	}
	_, err := b.Channel.QueueDeclare(
		b.Queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		amqp.Table{
			"x-dead-letter-exchange":    dlx,
			"x-dead-letter-routing-key": b.DeadLetterQueue(),
		},
	)
	if err != nil {
		return fmt.Errorf("rabbitmq: declarar %s: %w", b.Queue, err)
	}
	return nil
}

// Close cierra canal y conexión.
func (b *Broker) Close() {
	if b.Channel != nil {
		_ = b.Channel.Close()
	}
	if b.Conn != nil {
		_ = b.Conn.Close()
	}
}
