package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"userdir/internal/utils"
)

// durationSeconds parses env as time.Duration: "10s", "5m" or bare number = seconds (e.g. "10" -> 10s).
type durationSeconds time.Duration

// SetValue implements cleanenv.Setter.
func (d *durationSeconds) SetValue(data string) error {
	v, err := utils.ParseDurationEnv(data)
	if err != nil {
		return err
	}
	*d = durationSeconds(v)
	return nil
}

func (d durationSeconds) Duration() time.Duration { return time.Duration(d) }

// DefaultPort is used when PORT is unset or empty.
const DefaultPort = "3000"

type Config struct {
	App  AppConfig
	HTTP HTTPConfig
}

type AppConfig struct {
	Env     string `env:"APP_ENV" env-default:"dev"`
	Version string `env:"VERSION" env-default:"dev"`
}

// IsProd reports whether the app runs with production settings.
func (c AppConfig) IsProd() bool { return c.Env == "prod" || c.Env == "production" }

type HTTPConfig struct {
	Port string `env:"PORT" env-default:"3000"`

	// "10s", "5m" or a number of seconds without suffix.
	ReadTimeout     durationSeconds `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    durationSeconds `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     durationSeconds `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout durationSeconds `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	if cfg.HTTP.Port == "" {
		cfg.HTTP.Port = DefaultPort
	}
	if _, err := strconv.ParseUint(cfg.HTTP.Port, 10, 16); err != nil {
		return Config{}, fmt.Errorf("PORT %q: %w", cfg.HTTP.Port, err)
	}
	return cfg, nil
}

// Usage describes the supported environment variables.
func Usage() string {
	var cfg Config
	desc, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return desc
}
