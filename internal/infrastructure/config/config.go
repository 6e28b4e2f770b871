package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Auth     AuthConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
}

type AuthConfig struct {
	// AccessTokenTTLMinutes bounds how long a bearer token stays valid.
	AccessTokenTTLMinutes int `env:"ACCESS_TOKEN_TTL_MINUTES, default=30"`
	ResetTokenTTLHours    int `env:"RESET_TOKEN_TTL_HOURS,    default=24"`
	BcryptCost            int `env:"BCRYPT_COST,              default=12"`
	MailWorkers           int `env:"RESET_MAIL_WORKERS,       default=4"`
	// FrontendURL is the base the mailed reset link points at.
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:3000"`
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST,     default=localhost"`
	Port     int    `env:"POSTGRES_PORT,     default=5432"`
	User     string `env:"POSTGRES_USER,     default=postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	Database string `env:"POSTGRES_DB,       default=blog"`
	SSLMode  string `env:"POSTGRES_SSLMODE,  default=disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS, default=10"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"EMAIL_FROM, default=no-reply@localhost"`
	FromName string `env:"EMAIL_FROM_NAME, default=Blog Admin"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing JWT secret is only tolerated in development, where a fixed
// value keeps local tokens stable across restarts.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cfg.JWTSecret == "" {
		if cfg.Env != "development" {
			return nil, errors.New("JWT_SECRET is required outside development")
		}
		cfg.JWTSecret = "development-only-secret"
	}
	return &cfg, nil
}

func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.Auth.AccessTokenTTLMinutes) * time.Minute
}

func (c *Config) ResetTokenTTL() time.Duration {
	return time.Duration(c.Auth.ResetTokenTTLHours) * time.Hour
}
