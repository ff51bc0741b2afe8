package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	SessionTTL      time.Duration `env:"SESSION_TTL,      default=24h"`
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL, default=5s"`

	Backend BackendConfig
	Export  ExportConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// BackendConfig points at the upstream REST API the console fronts.
type BackendConfig struct {
	URL     string        `env:"BACKEND_URL,     default=http://localhost:3000/api"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT, default=15s"`
}

type ExportConfig struct {
	Workers int           `env:"EXPORT_WORKERS, default=4"`
	TTL     time.Duration `env:"EXPORT_TTL,     default=1h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=lead_console"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	DB       int    `env:"REDIS_DB,       default=0"`
	Password string `env:"REDIS_PASSWORD"`
}

// Development reports whether the console runs with developer diagnostics.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadContext(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadContext reads configuration through l; tests pass a MapLookuper.
func LoadContext(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
