package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/eventhub/events-api/internal/infrastructure/db/postgres"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs session tokens. Loaded once here; there is no rotation.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`

	// Bootstrap admin account, seeded on first startup.
	AdminName     string `env:"ADMIN_NAME,     default=Admin"`
	AdminEmail    string `env:"ADMIN_EMAIL,    default=admin@example.com"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=admin123"`

	DB PostgresConfig
}

type PostgresConfig struct {
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=5432"`
	User     string `env:"DB_USER,     default=postgres"`
	Password string `env:"DB_PASSWORD, default=postgres"`
	Database string `env:"DB_NAME,     default=events"`
	SSLMode  string `env:"DB_SSLMODE,  default=disable"`
}

// Postgres converts the env-bound settings into the storage package's config.
func (c PostgresConfig) Postgres() postgres.Config {
	return postgres.Config{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		Database: c.Database,
		SSLMode:  c.SSLMode,
	}
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
