package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/muhammadheryan/marketplace/constant"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL"`
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	OTP         OTPConfig
	Delivery    DeliveryConfig
	Internal    InternalConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"3306"`
	User            string        `envconfig:"DB_USER" default:"root"`
	Password        string        `envconfig:"DB_PASSWORD"`
	Name            string        `envconfig:"DB_NAME" default:"marketplace"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RabbitMQConfig struct {
	Host     string `envconfig:"RABBITMQ_HOST" default:"localhost"`
	Port     int    `envconfig:"RABBITMQ_PORT" default:"5672"`
	User     string `envconfig:"RABBITMQ_USER" default:"guest"`
	Password string `envconfig:"RABBITMQ_PASSWORD" default:"guest"`
	// APIURL is where the notifier worker delivers consumed notifications.
	APIURL string `envconfig:"RABBITMQ_NOTIFIER_API_URL" default:"http://localhost:8080"`
}

type AuthConfig struct {
	JWTSecret      string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiration  time.Duration `envconfig:"JWT_EXPIRATION" default:"24h"`
	SessionExpTime time.Duration `envconfig:"SESSION_EXPIRATION" default:"24h"`
	LoginLimit     int64         `envconfig:"LOGIN_RATE_LIMIT" default:"10"`
	LoginWindow    time.Duration `envconfig:"LOGIN_RATE_WINDOW" default:"15m"`
}

type OTPConfig struct {
	Length        int           `envconfig:"OTP_LENGTH" default:"6"`
	TTL           time.Duration `envconfig:"OTP_TTL" default:"5m"`
	RequestLimit  int64         `envconfig:"OTP_REQUEST_LIMIT" default:"3"`
	RequestWindow time.Duration `envconfig:"OTP_REQUEST_WINDOW" default:"10m"`
	VerifyLimit   int64         `envconfig:"OTP_VERIFY_LIMIT" default:"5"`
	VerifyWindow  time.Duration `envconfig:"OTP_VERIFY_WINDOW" default:"10m"`
}

type DeliveryConfig struct {
	CodeLength int `envconfig:"DELIVERY_CODE_LENGTH" default:"6"`
}

type InternalConfig struct {
	APIKey string `envconfig:"INTERNAL_API_KEY" required:"true"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Delivery.CodeLength < 1 || cfg.Delivery.CodeLength > constant.MaxDeliveryCodeLength {
		return nil, fmt.Errorf("DELIVERY_CODE_LENGTH must be between 1 and %d, got %d", constant.MaxDeliveryCodeLength, cfg.Delivery.CodeLength)
	}
	return &cfg, nil
}

func (c *Config) GetDSN() string {
	dsn := mysql.NewConfig()
	dsn.User = c.Database.User
	dsn.Passwd = c.Database.Password
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port))
	dsn.DBName = c.Database.Name
	dsn.ParseTime = true
	dsn.Loc = time.UTC
	dsn.Params = map[string]string{"charset": "utf8mb4"}
	return dsn.FormatDSN()
}

func (c *Config) GetAMQPURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s/", c.RabbitMQ.User, c.RabbitMQ.Password, net.JoinHostPort(c.RabbitMQ.Host, strconv.Itoa(c.RabbitMQ.Port)))
}
