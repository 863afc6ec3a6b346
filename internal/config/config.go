package config

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config centralises every runtime setting so the rest of the codebase can remain deterministic
// and easy to test. All fields can be overridden using environment variables.
type Config struct {
	ServiceName string     `env:"SERVICE_NAME" envDefault:"dockerized-api"`
	Env         string     `env:"ENV" envDefault:"development"`
	LogLevel    string     `env:"LOG_LEVEL" envDefault:"INFO"`
	GitSHA      *string    `env:"GIT_SHA"`
	Host        string     `env:"HOST" envDefault:"0.0.0.0"`
	Port        int        `env:"PORT" envDefault:"8000"`
	HTTP        HTTPConfig `envPrefix:"HTTP_"`
}

// HTTPConfig controls the HTTP server behaviour.
type HTTPConfig struct {
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	CORSOrigins  []string      `env:"CORS_ORIGINS" envDefault:"*"`
}

// Load reads configuration from the environment, applying defaults defined above.
// A .env file in the working directory is merged in first when one exists.
// A malformed value (e.g. a non-numeric PORT) aborts startup.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr joins Host and Port into the listen address for the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// IsProduction reports whether the service runs with the production environment tag.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// IsDevelopment reports whether the service runs with the development environment tag.
func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}
