package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret    string `env:"JWT_SECRET"`
	TokenTTLHrs  int    `env:"TOKEN_TTL_HOURS, default=24"`
	AuditWorkers int    `env:"AUDIT_WORKERS,   default=4"`

	// Seed admin account, created at startup when absent.
	AdminName     string `env:"ADMIN_NAME,     default=Admin"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	AdminCredits  int    `env:"ADMIN_CREDITS,  default=1000"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Imagen ImagenConfig

	// ConfigEndpoint receives saved environment variable sets.
	ConfigEndpoint string `env:"CONFIG_ENDPOINT"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=pgedit_studio"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type ImagenConfig struct {
	APIKey  string `env:"IMAGEN_API_KEY"`
	BaseURL string `env:"IMAGEN_BASE_URL"`
	Model   string `env:"IMAGEN_MODEL, default=imagen-4.0-generate-001"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
