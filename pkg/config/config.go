package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	HTTP      HTTPConfig
	Cookie    CookieConfig
	Firebase  FirebaseConfig
	Mail      MailConfig
	Storage   StorageConfig
	Recaptcha RecaptchaConfig
	Redis     RedisConfig
	RabbitMQ  RabbitMQConfig
	Notify    NotifyConfig
	Swagger   SwaggerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// IsProduction indica si la app corre en producción.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo (ej. DATABASE_URL de Supabase).
type DBConfig struct {
	DatabaseURL    string
	Host           string
	Port           int
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MaxConns       int
	MigrateOnStart bool
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	Prefix         string // prefijo de las rutas de negocio, por defecto /auth
	AllowedOrigins []string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CookieConfig atributos de la cookie de sesión.
type CookieConfig struct {
	Name     string
	MaxAge   int // segundos
	Secure   bool
	SameSite string // Lax, Strict, None
}

// FirebaseConfig proyecto de Firebase Auth usado como proveedor de identidad.
type FirebaseConfig struct {
	ProjectID   string
	APIKey      string
	CertsURL    string // certificados x509 públicos con los que Google firma los ID tokens
	IdentityURL string // base de la API REST de Identity Toolkit
}

// MailConfig configuración del envío de correos transaccionales.
type MailConfig struct {
	Driver       string // resend, smtp o log
	ResendAPIKey string
	From         string
	FromName     string
	ReplyTo      string
	AdminTo      []string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
}

// FromHeader devuelve el remitente con nombre visible: "Nombre <correo>".
func (c MailConfig) FromHeader() string {
	if c.FromName == "" {
		return c.From
	}
	return fmt.Sprintf("%s <%s>", c.FromName, c.From)
}

// ReplyAddress devuelve la dirección de respuesta (ReplyTo o From).
func (c MailConfig) ReplyAddress() string {
	if c.ReplyTo != "" {
		return c.ReplyTo
	}
	return c.From
}

// StorageConfig bucket de Supabase Storage para imágenes.
type StorageConfig struct {
	SupabaseURL string
	ServiceKey  string
	Bucket      string
}

// RecaptchaConfig verificación de reCAPTCHA en formularios públicos.
type RecaptchaConfig struct {
	Secret    string
	VerifyURL string
}

// RedisConfig Redis para rate limiting. Addr vacío deshabilita el limitador.
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	RateLimit  int
	RateWindow time.Duration
}

// Enabled indica si hay Redis configurado.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// RabbitMQConfig cola de notificaciones de órdenes.
type RabbitMQConfig struct {
	URL   string
	Queue string
}

// NotifyConfig cómo se despachan las notificaciones post-commit.
type NotifyConfig struct {
	Driver  string // inproc o rabbitmq
	Timeout time.Duration
}

// SwaggerConfig UI de documentación.
type SwaggerConfig struct {
	Enabled  bool
	FilePath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, FIREBASE_PROJECT_ID, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	env := getString(v, "APP_ENV", "development")
	production := env == "production"

	sameSite := "Lax"
	if production {
		sameSite = "None"
	}

	projectID := getString(v, "FIREBASE_PROJECT_ID", "")

	cfg := &Config{
		App: AppConfig{
			Env:      env,
			Name:     getString(v, "APP_NAME", "pilotos-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL:    getString(v, "DATABASE_URL", ""),
			Host:           getString(v, "DB_HOST", "localhost"),
			Port:           getInt(v, "DB_PORT", 5432),
			User:           getString(v, "DB_USER", "postgres"),
			Password:       getString(v, "DB_PASSWORD", ""),
			DBName:         getString(v, "DB_NAME", "pilotos"),
			SSLMode:        getString(v, "DB_SSLMODE", "disable"),
			MaxConns:       getInt(v, "DB_MAX_CONNS", 25),
			MigrateOnStart: getBool(v, "DB_MIGRATE_ON_START", false),
		},
		HTTP: HTTPConfig{
			Host:   getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:   getInt(v, "PORT", getInt(v, "HTTP_PORT", 3000)),
			Prefix: getString(v, "HTTP_PREFIX", "/auth"),
			AllowedOrigins: getList(v, "CORS_ORIGINS", []string{
				"http://localhost:5173",
				"https://pilotosbaseball.netlify.app",
				"https://pilotosfah.com",
			}),
		},
		Cookie: CookieConfig{
			Name:     getString(v, "COOKIE_NAME", "token"),
			MaxAge:   getInt(v, "COOKIE_MAX_AGE", 3600),
			Secure:   getBool(v, "COOKIE_SECURE", production),
			SameSite: getString(v, "COOKIE_SAMESITE", sameSite),
		},
		Firebase: FirebaseConfig{
			ProjectID:   projectID,
			APIKey:      getString(v, "FIREBASE_API_KEY", ""),
			CertsURL:    getString(v, "FIREBASE_CERTS_URL", "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"),
			IdentityURL: getString(v, "FIREBASE_IDENTITY_URL", "https://identitytoolkit.googleapis.com/v1"),
		},
		Mail: MailConfig{
			Driver:       getString(v, "MAIL_DRIVER", "resend"),
			ResendAPIKey: getString(v, "RESEND_API_KEY", ""),
			From:         getString(v, "EMAIL_FROM", ""),
			FromName:     getString(v, "EMAIL_FROM_NAME", "Pilotos FAH"),
			ReplyTo:      getString(v, "EMAIL_REPLY_TO", ""),
			AdminTo:      SplitRecipients(getString(v, "EMAIL_TO", "")),
			SMTPHost:     getString(v, "SMTP_HOST", ""),
			SMTPPort:     getInt(v, "SMTP_PORT", 587),
			SMTPUser:     getString(v, "SMTP_USER", ""),
			SMTPPassword: getString(v, "SMTP_PASSWORD", ""),
		},
		Storage: StorageConfig{
			SupabaseURL: strings.TrimRight(getString(v, "SUPABASE_URL", ""), "/"),
			ServiceKey:  getString(v, "SUPABASE_SERVICE_ROLE_KEY", ""),
			Bucket:      getString(v, "SUPABASE_BUCKET", "Archivos"),
		},
		Recaptcha: RecaptchaConfig{
			Secret:    getString(v, "RECAPTCHA_SECRET", ""),
			VerifyURL: getString(v, "RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify"),
		},
		Redis: RedisConfig{
			Addr:       getString(v, "REDIS_ADDR", ""),
			Password:   getString(v, "REDIS_PASSWORD", ""),
			DB:         getInt(v, "REDIS_DB", 0),
			RateLimit:  getInt(v, "RATE_LIMIT", 10),
			RateWindow: getDuration(v, "RATE_WINDOW", time.Minute),
		},
		RabbitMQ: RabbitMQConfig{
			URL:   getString(v, "RABBITMQ_URL", ""),
			Queue: getString(v, "RABBITMQ_QUEUE", "ordenes.creadas"),
		},
		Notify: NotifyConfig{
			Driver:  getString(v, "NOTIFY_DRIVER", "inproc"),
			Timeout: getDuration(v, "NOTIFY_TIMEOUT", 30*time.Second),
		},
		Swagger: SwaggerConfig{
			Enabled:  getBool(v, "SWAGGER_ENABLED", !production),
			FilePath: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if cfg.Notify.Driver == "rabbitmq" && cfg.RabbitMQ.URL == "" {
		return nil, fmt.Errorf("config: NOTIFY_DRIVER=rabbitmq requiere RABBITMQ_URL")
	}
	return cfg, nil
}

// SplitRecipients separa una lista de correos por coma o punto y coma, descartando vacíos.
func SplitRecipients(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if v.IsSet(key) {
		if d := v.GetDuration(key); d > 0 {
			return d
		}
	}
	return def
}

func getList(v *viper.Viper, key string, def []string) []string {
	if v.IsSet(key) {
		if list := SplitRecipients(v.GetString(key)); len(list) > 0 {
			return list
		}
	}
	return def
}
