package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// StorageDriver selects the repository backend: mongo or postgres.
	StorageDriver string `env:"STORAGE_DRIVER, default=mongo"`

	Auth     AuthConfig
	Mongo    MongoConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	HTTP     HTTPConfig
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET, required"`
	Issuer    string        `env:"JWT_ISSUER, default=professionals-api"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=professionals"`
}

type PostgresConfig struct {
	DSN          string `env:"POSTGRES_DSN, default=host=localhost user=postgres password=postgres dbname=professionals port=5432 sslmode=disable"`
	MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS, default=25"`
	MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS, default=10"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,       default=0"`
	UserTTL  time.Duration `env:"USER_CACHE_TTL, default=10m"`
}

type HTTPConfig struct {
	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`
	// PhoneRegion is the default region used to validate phone numbers
	// written without an international prefix.
	PhoneRegion string `env:"PHONE_REGION, default=AR"`
}

// Load reads a .env file when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadWith(envconfig.OsLookuper())
}

// LoadWith reads configuration from l.
func LoadWith(l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}

	switch cfg.StorageDriver {
	case StorageMongo, StoragePostgres:
	default:
		return nil, fmt.Errorf("config: unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	return &cfg, nil
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "local"
}
