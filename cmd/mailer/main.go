// mailer consume la cola de órdenes creadas y envía los correos de confirmación.
// Se usa con NOTIFY_DRIVER=rabbitmq; la API sólo publica.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pilotosfah/pilotos-api/internal/application/notify"
	"github.com/pilotosfah/pilotos-api/internal/infrastructure/mail"
	infrapdf "github.com/pilotosfah/pilotos-api/internal/infrastructure/pdf"
	"github.com/pilotosfah/pilotos-api/internal/infrastructure/rabbitmq"
	"github.com/pilotosfah/pilotos-api/pkg/config"
	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "pilotos-mailer"})

	if cfg.RabbitMQ.URL == "" {
		log.Fatal().Msg("RABBITMQ_URL es obligatorio para el worker de correo")
	}

	mailer, err := mail.New(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("mailer")
	}
	notifier, err := notify.NewMailNotifier(mailer, infrapdf.NewReceiptGenerator(cfg.Mail.FromName), notify.Sender{
		From:    cfg.Mail.FromHeader(),
		ReplyTo: cfg.Mail.ReplyAddress(),
		AdminTo: cfg.Mail.AdminTo,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("notificador de correo")
	}

	broker, err := rabbitmq.Dial(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a RabbitMQ")
	}
	defer broker.Close()

	msgs, err := rabbitmq.Subscribe(broker.Channel, broker.Queue, "pilotos-mailer")
	if err != nil {
		log.Fatal().Err(err).Msg("suscripción")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("queue", broker.Queue).Str("dlq", broker.DeadLetterQueue()).Msg("esperando órdenes")
	rabbitmq.NewOrderConsumer(notifier, log, cfg.Notify.Timeout).Run(ctx, msgs)
	log.Info().Msg("worker detenido")
}
