package shared

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the environment. The seeder uses the SEED_* fields and
// ignores the rest.
type Config struct {
	AppEnv      string `env:"APP_ENV" env-default:"prod"`
	HTTPAddr    string `env:"HTTP_ADDR" env-default:":5000"`
	Port        string `env:"PORT"`
	MetricsAddr string `env:"METRICS_ADDR"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`

	CORSOrigins           []string `env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
	MaxBodyBytes          int64    `env:"MAX_BODY_BYTES" env-default:"1048576"`
	RequestTimeoutSeconds int      `env:"REQUEST_TIMEOUT_SECONDS" env-default:"15"`

	RedisAddr             string `env:"REDIS_ADDR"`
	RedisPass             string `env:"REDIS_PASSWORD"`
	RedisDB               int    `env:"REDIS_DB" env-default:"0"`
	IdempotencyTTLSeconds int    `env:"IDEMPOTENCY_TTL_SECONDS" env-default:"86400"`

	SeedBaseURL string `env:"SEED_BASE_URL" env-default:"http://localhost:5000"`
	SeedFile    string `env:"SEED_FILE" env-default:"seed/hostels.json"`
	SeedWorkers int    `env:"SEED_WORKERS" env-default:"4"`
	SeedRPS     int    `env:"SEED_RPS" env-default:"10"`
}

func Load() (Config, error) {
	var c Config
	if err := cleanenv.ReadEnv(&c); err != nil {
		return Config{}, fmt.Errorf("shared.Load: %w", err)
	}

	// PORT is what most hosts inject; an explicit HTTP_ADDR still wins.
	if _, set := os.LookupEnv("HTTP_ADDR"); !set && c.Port != "" {
		c.HTTPAddr = ":" + c.Port
	}
	c.CORSOrigins = splitCSV(c.CORSOrigins)
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"*"}
	}

	switch {
	case c.MaxBodyBytes <= 0:
		return Config{}, fmt.Errorf("shared.Load: MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	case c.RequestTimeoutSeconds <= 0:
		return Config{}, fmt.Errorf("shared.Load: REQUEST_TIMEOUT_SECONDS must be positive, got %d", c.RequestTimeoutSeconds)
	case c.SeedWorkers <= 0:
		return Config{}, fmt.Errorf("shared.Load: SEED_WORKERS must be positive, got %d", c.SeedWorkers)
	}
	return c, nil
}

func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func (c Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempotencyTTLSeconds) * time.Second
}

// splitCSV trims entries and drops empty ones.
func splitCSV(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
