package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pilotosfah/pilotos-api/docs"
	"github.com/pilotosfah/pilotos-api/internal/application/auth"
	"github.com/pilotosfah/pilotos-api/internal/application/notify"
	"github.com/pilotosfah/pilotos-api/internal/application/orders"
	"github.com/pilotosfah/pilotos-api/internal/application/usecase"
	"github.com/pilotosfah/pilotos-api/internal/infrastructure/cache"
	"github.com/pilotosfah/pilotos-api/internal/infrastructure/firebase"
	"github.com/pilotosfah/pilotos-api/internal/infrastructure/mail"
	"github.com/pilotosfah/pilotos-api/internal/infrastructure/metrics"
	infrapdf "github.com/pilotosfah/pilotos-api/internal/infrastructure/pdf"
	"github.com/pilotosfah/pilotos-api/internal/infrastructure/postgres"
	"github.com/pilotosfah/pilotos-api/internal/infrastructure/rabbitmq"
	"github.com/pilotosfah/pilotos-api/internal/infrastructure/recaptcha"
	"github.com/pilotosfah/pilotos-api/internal/infrastructure/storage"
	httpRouter "github.com/pilotosfah/pilotos-api/internal/interfaces/http"
	"github.com/pilotosfah/pilotos-api/pkg/config"
	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

// @title                       Pilotos FAH API
// @version                     1.0
// @description                 Backend del sitio del club: tienda, órdenes, contenido y formularios.
// @BasePath                    /
// @securityDefinitions.apikey  CookieAuth
// @in                          cookie
// @name                        token
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.MigrateOnStart {
		if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log.Named("db"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	newsRepo := postgres.NewNewsRepository(pool)
	testimonialRepo := postgres.NewTestimonialRepository(pool)
	playerRepo := postgres.NewPlayerRepository(pool)
	donationRepo := postgres.NewDonationRepository(pool)
	siteRepo := postgres.NewSiteRepository(pool)
	liveRepo := postgres.NewLiveStreamRepository(pool)
	boardRepo := postgres.NewBoardRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Correo: notificador directo; con NOTIFY_DRIVER=rabbitmq las órdenes van a la cola.
	mailer, err := mail.New(cfg.Mail, log.Named("mail"))
	if err != nil {
		log.Fatal().Err(err).Msg("mailer")
	}
	mailNotifier, err := notify.NewMailNotifier(mailer, infrapdf.NewReceiptGenerator(cfg.Mail.FromName), notify.Sender{
		From:    cfg.Mail.FromHeader(),
		ReplyTo: cfg.Mail.ReplyAddress(),
		AdminTo: cfg.Mail.AdminTo,
	}, log.Named("notify"))
	if err != nil {
		log.Fatal().Err(err).Msg("notificador de correo")
	}
	dispatcher := notify.NewDispatcher(log.Named("tasks"), cfg.Notify.Timeout, metrics.ObserveTask)

	var orderNotifier orders.Notifier = mailNotifier
	if cfg.Notify.Driver == "rabbitmq" {
		broker, err := rabbitmq.Dial(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer broker.Close()
		orderNotifier = rabbitmq.NewOrderPublisher(broker.Channel, broker.Queue)
		log.Info().Str("queue", broker.Queue).Msg("notificaciones de órdenes vía RabbitMQ")
	}

	// Rate limit sólo con Redis configurado y accesible.
	var rateCounter httpRouter.RateCounter
	if cfg.Redis.Enabled() {
		rdb, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, rate limit desactivado")
		} else {
			defer rdb.Close()
			rateCounter = rdb
		}
	}

	verifier := firebase.NewTokenVerifier(cfg.Firebase.ProjectID, cfg.Firebase.CertsURL)
	identity := firebase.NewIdentityClient(cfg.Firebase.IdentityURL, cfg.Firebase.APIKey)
	objectStorage := storage.NewSupabaseStorage(cfg.Storage.SupabaseURL, cfg.Storage.ServiceKey, cfg.Storage.Bucket)
	captcha := recaptcha.NewClient(cfg.Recaptcha.Secret, cfg.Recaptcha.VerifyURL)

	uploadUC := usecase.NewUploadUseCase(objectStorage, log.Named("upload"))
	accountUC := auth.NewAccountUseCase(identity, userRepo, log.Named("accounts"))
	createOrderUC := orders.NewCreateOrderUseCase(txRunner, userRepo, productRepo, orderNotifier, dispatcher, log.Named("orders"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    usecase.MaxUploadSize + 1<<20,
		Immutable:    true,
		ErrorHandler: httpRouter.ErrorHandler(log.Named("http")),
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.HTTP.AllowedOrigins, ","),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept",
		AllowCredentials: true,
	}))
	app.Use(httpRouter.RequestLogger(log.Named("http")))
	app.Use(httpRouter.Metrics())

	docs.SwaggerInfo.Title = cfg.App.Name
	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.Swagger.Enabled {
		if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Swagger.FilePath,
				Path:     "docs",
				Title:    "Pilotos FAH API",
			}))
		} else {
			log.Warn().Str("file", cfg.Swagger.FilePath).Msg("swagger.json no encontrado, /docs desactivado")
		}
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API alive")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Prefix:        cfg.HTTP.Prefix,
		Verifier:      verifier,
		RoleResolver:  auth.NewRoleResolver(userRepo),
		Cookie:        cfg.Cookie,
		RateCounter:   rateCounter,
		RateLimit:     httpRouter.RateLimitConfig{Limit: cfg.Redis.RateLimit, Window: cfg.Redis.RateWindow},
		AccountUC:     accountUC,
		UserUC:        usecase.NewUserUseCase(userRepo),
		CreateOrder:   createOrderUC,
		OrderUC:       orders.NewOrderUseCase(orderRepo),
		ProductUC:     usecase.NewProductUseCase(productRepo, uploadUC),
		EventUC:       usecase.NewEventUseCase(eventRepo),
		NewsUC:        usecase.NewNewsUseCase(newsRepo),
		TestimonialUC: usecase.NewTestimonialUseCase(testimonialRepo),
		PlayerUC:      usecase.NewPlayerUseCase(playerRepo),
		DonationUC:    usecase.NewDonationUseCase(donationRepo, mailNotifier, dispatcher),
		ContactUC:     usecase.NewContactUseCase(mailNotifier, dispatcher, captcha),
		SiteUC:        usecase.NewSiteUseCase(siteRepo, uploadUC),
		UploadUC:      uploadUC,
		LiveStreamUC:  usecase.NewLiveStreamUseCase(liveRepo),
		BoardUC:       usecase.NewBoardUseCase(boardRepo),
		CategoryUC:    usecase.NewCategoryUseCase(categoryRepo),
		ReceiptUC:     usecase.NewDonationReceiptUseCase(userRepo, mailNotifier, log.Named("receipts")),
		Log:           log.Named("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	// Correos pendientes de órdenes y formularios.
	if err := dispatcher.Wait(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("tareas en segundo plano sin terminar")
	}

	log.Info().Msg("aplicación detenida")
}
