package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=120h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	SentryDSN string        `env:"SENTRY_DSN"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Search SearchConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=caltrack"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SearchConfig is the explicit aggregator configuration: which sources run
// and with what credentials. A remote provider with no credentials is
// skipped rather than called.
type SearchConfig struct {
	LocalTableEnabled bool   `env:"SEARCH_LOCAL_TABLE, default=true"`
	NutritionixAppID  string `env:"NUTRITIONIX_APP_ID"`
	NutritionixAppKey string `env:"NUTRITIONIX_APP_KEY"`
	EdamamAppID       string `env:"EDAMAM_APP_ID"`
	EdamamAppKey      string `env:"EDAMAM_APP_KEY"`
	FallbackEnabled   bool   `env:"SEARCH_FALLBACK,    default=true"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
