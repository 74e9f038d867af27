package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App           AppConfig
	HttpServer    HttpServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	MessageStream MessageStreamConfig
	HttpClient    HttpClientConfig
	Scheduler     SchedulerConfig
	Auth          AuthConfig
	Google        GoogleConfig
	Mailer        MailerConfig
	Storage       StorageConfig
	Ledger        LedgerConfig
	Notification  NotificationConfig
}

type AppConfig struct {
	Name string `envconfig:"APP_NAME" default:"marketplace-service"`
	Env  string `envconfig:"APP_ENV" default:"development"`
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

type HttpServerConfig struct {
	Port         string        `envconfig:"HTTP_PORT" default:"8000"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"15s"`
	BodyLimit    int           `envconfig:"HTTP_BODY_LIMIT" default:"12582912"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	Username        string        `envconfig:"DB_USERNAME" default:"postgres"`
	Password        string        `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName          string        `envconfig:"DB_NAME" default:"marketplace"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"AMQP_HOST" default:"localhost"`
	Port     string `envconfig:"AMQP_PORT" default:"5672"`
	Username string `envconfig:"AMQP_USERNAME" default:"guest"`
	Password string `envconfig:"AMQP_PASSWORD" default:"guest"`
	// ExchangeName is prefixed to every queue so several deployments can share a broker.
	ExchangeName string `envconfig:"AMQP_EXCHANGE" default:"marketplace"`
	MaxRetries   int    `envconfig:"AMQP_MAX_RETRIES" default:"3"`
}

type HttpClientConfig struct {
	// Type selects the breaker: threshold, consecutive or rate.
	Type           string        `envconfig:"HTTP_CLIENT_BREAKER_TYPE" default:"consecutive"`
	Threshold      int64         `envconfig:"HTTP_CLIENT_BREAKER_THRESHOLD" default:"10"`
	Rate           float64       `envconfig:"HTTP_CLIENT_BREAKER_RATE" default:"0.5"`
	MinSamples     int64         `envconfig:"HTTP_CLIENT_BREAKER_MIN_SAMPLES" default:"100"`
	ConsecutiveErr int64         `envconfig:"HTTP_CLIENT_BREAKER_CONSECUTIVE" default:"5"`
	Timeout        time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"10s"`
}

type SchedulerConfig struct {
	// Mode is "asynq" (distributed, redis backed) or "local" (in-process gocron).
	Mode           string        `envconfig:"SCHEDULER_MODE" default:"asynq"`
	SweepInterval  time.Duration `envconfig:"SCHEDULER_SWEEP_INTERVAL" default:"1m"`
	MonitoringPort string        `envconfig:"SCHEDULER_MONITORING_PORT" default:"8080"`
	Concurrency    int           `envconfig:"SCHEDULER_CONCURRENCY" default:"10"`
}

type AuthConfig struct {
	JWTSecret string        `envconfig:"JWT_SECRET" default:"change-me"`
	TokenTTL  time.Duration `envconfig:"JWT_TTL" default:"168h"`
	ResetTTL  time.Duration `envconfig:"PASSWORD_RESET_TTL" default:"1h"`
}

type GoogleConfig struct {
	ClientID    string `envconfig:"GOOGLE_CLIENT_ID" default:""`
	UserInfoURL string `envconfig:"GOOGLE_USERINFO_URL" default:"https://www.googleapis.com/oauth2/v3/userinfo"`
}

type MailerConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:""`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"SMTP_FROM" default:"no-reply@marketplace.local"`
	FromName string `envconfig:"SMTP_FROM_NAME" default:"Marketplace"`
}

func (m MailerConfig) Enabled() bool {
	return m.Host != ""
}

type StorageConfig struct {
	Root      string `envconfig:"UPLOAD_ROOT" default:"./uploads"`
	PublicURL string `envconfig:"UPLOAD_PUBLIC_URL" default:"/uploads"`
}

type LedgerConfig struct {
	CommissionRate decimal.Decimal `envconfig:"COMMISSION_RATE" default:"10.00"`
	PaymentMethod  string          `envconfig:"PAYMENT_METHOD" default:"cash"`
}

type NotificationConfig struct {
	ReminderLead time.Duration `envconfig:"NOTIFICATION_REMINDER_LEAD" default:"24h"`
	SweepBatch   int           `envconfig:"NOTIFICATION_SWEEP_BATCH" default:"100"`
	SweepLockTTL time.Duration `envconfig:"NOTIFICATION_SWEEP_LOCK_TTL" default:"55s"`
	Location     string        `envconfig:"NOTIFICATION_TIMEZONE" default:"UTC"`
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}
	return &cfg
}
