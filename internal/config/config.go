// config предоставляет структуру конфигурации party-one и функции
// загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
//
// ENV всегда накладывается поверх значений из YAML.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	CORS     CORSConfig     `yaml:"cors"`
	Auth     AuthConfig     `yaml:"auth"`
	OAuth    OAuthConfig    `yaml:"oauth"`
	Postgres PostgresConfig `yaml:"postgres"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Redis    RedisConfig    `yaml:"redis"`
	S3       S3Config       `yaml:"s3"`
	KYC      KYCConfig      `yaml:"kyc"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Payments PaymentsConfig `yaml:"payments"`
	OTP      OTPConfig      `yaml:"otp"`
	Janitor  JanitorConfig  `yaml:"janitor"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host              string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port              string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	BasePath          string        `yaml:"base_path" env:"HTTP_BASE_PATH" env-default:"/api"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// CORSConfig — разрешённые источники SPA.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
	MaxAge         int      `yaml:"max_age" env:"CORS_MAX_AGE" env-default:"300"`
}

// AuthConfig содержит параметры выпуска и валидации токенов.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_TTL" env-default:"720h"`
	VerifyTokenTTL  time.Duration `yaml:"verify_token_ttl" env:"VERIFY_TOKEN_TTL" env-default:"24h"`
	Issuer          string        `yaml:"issuer" env:"ISSUER" env-default:"party-one"`
	Audience        []string      `yaml:"audience" env:"AUDIENCE" env-separator:"," env-default:"party-one-web"`
	// RequireVerifiedEmail запрещает вход по паролю до подтверждения e-mail.
	RequireVerifiedEmail bool `yaml:"require_verified_email" env:"REQUIRE_VERIFIED_EMAIL" env-default:"true"`
	PasswordMinLen       int  `yaml:"password_min_len" env:"PASSWORD_MIN_LEN" env-default:"6"`
}

// OAuthConfig — внешние провайдеры входа. Пустой ClientID отключает провайдер.
type OAuthConfig struct {
	Google GoogleOAuthConfig `yaml:"google"`
}

type GoogleOAuthConfig struct {
	ClientID     string   `yaml:"client_id" env:"GOOGLE_CLIENT_ID"`
	ClientSecret string   `yaml:"client_secret" env:"GOOGLE_CLIENT_SECRET"`
	RedirectURL  string   `yaml:"redirect_url" env:"GOOGLE_REDIRECT_URL"`
	Scopes       []string `yaml:"scopes" env:"GOOGLE_SCOPES" env-separator:"," env-default:"openid,email,profile"`
}

// Enabled сообщает, настроен ли вход через Google.
func (g GoogleOAuthConfig) Enabled() bool {
	return g.ClientID != ""
}

type PostgresConfig struct {
	URL string `yaml:"url" env:"POSTGRES_URL" env-required:"true"`
}

type MongoConfig struct {
	URI      string `yaml:"uri" env:"MONGO_URI" env-required:"true"`
	Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"party_one"`
}

type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL" env-required:"true"`
}

type S3Config struct {
	Endpoint     string        `yaml:"endpoint" env:"S3_ENDPOINT"`
	RootUser     string        `yaml:"root_user" env:"S3_ROOT_USER"`
	RootPassword string        `yaml:"root_password" env:"S3_ROOT_PASSWORD"`
	Bucket       string        `yaml:"bucket" env:"S3_BUCKET" env-default:"kyc-documents"`
	UseSSL       bool          `yaml:"use_ssl" env:"S3_USE_SSL" env-default:"false"`
	PresignTTL   time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"10m"`
}

// KYCConfig — ограничения на загружаемые документы.
type KYCConfig struct {
	MaxSizeBytes        int64    `yaml:"max_size_bytes" env:"KYC_MAX_SIZE_BYTES" env-default:"10485760"`
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"KYC_ALLOWED_CONTENT_TYPES" env-separator:"," env-default:"image/jpeg,image/png,image/gif"`
}

// RabbitMQConfig — брокер доменных событий. Пустой URL включает
// логирующий fallback вместо публикации.
type RabbitMQConfig struct {
	URL      string `yaml:"url" env:"RABBITMQ_URL"`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"party-one.events"`
}

type PaymentsConfig struct {
	CheckoutURL   string `yaml:"checkout_url" env:"PAYMENTS_CHECKOUT_URL" env-default:"https://pay.party.one/checkout"`
	SigningSecret string `yaml:"signing_secret" env:"PAYMENTS_SIGNING_SECRET"`
	// WebhookSecret — секрет, которым биллинг подписывает подтверждения
	// оплаты. Пустой отключает POST /payments/confirm.
	WebhookSecret string        `yaml:"webhook_secret" env:"PAYMENTS_WEBHOOK_SECRET"`
	LinkTTL       time.Duration `yaml:"link_ttl" env:"PAYMENTS_LINK_TTL" env-default:"30m"`
	Currency      string        `yaml:"currency" env:"PAYMENTS_CURRENCY" env-default:"USD"`
}

// OTPConfig — параметры одноразовых кодов и сессий мастеров.
type OTPConfig struct {
	TTL            time.Duration `yaml:"ttl" env:"OTP_TTL" env-default:"10m"`
	MaxAttempts    int           `yaml:"max_attempts" env:"OTP_MAX_ATTEMPTS" env-default:"5"`
	ResendCooldown time.Duration `yaml:"resend_cooldown" env:"OTP_RESEND_COOLDOWN" env-default:"60s"`
	SessionTTL     time.Duration `yaml:"session_ttl" env:"OTP_SESSION_TTL" env-default:"15m"`
}

// JanitorConfig — фоновые задачи очистки (robfig/cron spec).
type JanitorConfig struct {
	Enabled         bool          `yaml:"enabled" env:"JANITOR_ENABLED" env-default:"true"`
	TokensSchedule  string        `yaml:"tokens_schedule" env:"JANITOR_TOKENS_SCHEDULE" env-default:"@every 1h"`
	OrphansSchedule string        `yaml:"orphans_schedule" env:"JANITOR_ORPHANS_SCHEDULE" env-default:"@daily"`
	OrphanGrace     time.Duration `yaml:"orphan_grace" env:"JANITOR_ORPHAN_GRACE" env-default:"24h"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
	Request time.Duration `yaml:"request" env:"REQUEST_TIMEOUT" env-default:"15s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	readFile := func(p string) error {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return fmt.Errorf("failed to overlay env: %w", err)
		}

		return nil
	}

	switch {
	case path != "":
		if err := readFile(path); err != nil {
			return nil, err
		}
	case os.Getenv("CONFIG_PATH") != "":
		if err := readFile(os.Getenv("CONFIG_PATH")); err != nil {
			return nil, err
		}
	default:
		if _, err := os.Stat("local.yaml"); err == nil {
			if err := readFile("local.yaml"); err != nil {
				return nil, err
			}
			break
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case "local", "dev", "prod":
	default:
		return fmt.Errorf("env must be one of local|dev|prod, got %q", c.Env)
	}

	if c.HTTP.Host == "" {
		return fmt.Errorf("http.host is required")
	}

	if p, err := strconv.Atoi(c.HTTP.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("http.port must be a valid TCP port (1..65535)")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}

	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token ttls must be > 0")
	}

	if c.Auth.PasswordMinLen <= 0 {
		c.Auth.PasswordMinLen = 6
	}

	if c.Postgres.URL == "" {
		return fmt.Errorf("postgres.url is required")
	}

	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri is required")
	}

	if c.Mongo.Database == "" {
		c.Mongo.Database = "party_one"
	}

	if c.Redis.URL == "" {
		return fmt.Errorf("redis.url is required")
	}

	if c.S3.Endpoint != "" {
		if c.S3.RootUser == "" || c.S3.RootPassword == "" {
			return fmt.Errorf("s3.root_user and s3.root_password are required when s3.endpoint is set")
		}

		if c.S3.Bucket == "" {
			return fmt.Errorf("s3.bucket is required")
		}
	}

	if c.S3.PresignTTL <= 0 {
		c.S3.PresignTTL = 10 * time.Minute
	}

	if c.KYC.MaxSizeBytes <= 0 {
		c.KYC.MaxSizeBytes = 10 * 1024 * 1024 // 10 MiB
	}

	if len(c.KYC.AllowedContentTypes) == 0 {
		return fmt.Errorf("kyc.allowed_content_types must not be empty")
	}

	if c.Payments.SigningSecret == "" {
		c.Payments.SigningSecret = c.Auth.JWTSecret
	}

	if w := c.Payments.WebhookSecret; w != "" && (w == c.Payments.SigningSecret || w == c.Auth.JWTSecret) {
		return fmt.Errorf("payments.webhook_secret must differ from payments.signing_secret and auth.jwt_secret")
	}

	if c.OTP.MaxAttempts <= 0 {
		return fmt.Errorf("otp.max_attempts must be > 0")
	}

	if c.OTP.TTL <= 0 || c.OTP.SessionTTL <= 0 {
		return fmt.Errorf("otp.ttl and otp.session_ttl must be > 0")
	}

	if c.OTP.ResendCooldown < 0 {
		return fmt.Errorf("otp.resend_cooldown must be >= 0")
	}

	if c.Timeouts.Service <= 0 {
		c.Timeouts.Service = 5 * time.Second
	}

	return nil
}
