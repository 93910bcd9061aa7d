package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const DefaultRecordsAPIBaseURL = "https://excel-record-bk.vercel.app"

// Config holds runtime configuration. Values come from the environment,
// which main seeds from .env through godotenv.
type Config struct {
	Port string `env:"PORT" envDefault:"3000"`

	RecordsAPIBaseURL string        `env:"RECORDS_API_BASE_URL" envDefault:"https://excel-record-bk.vercel.app"`
	RecordsAPITimeout time.Duration `env:"RECORDS_API_TIMEOUT" envDefault:"15s"`
	MaxUploadBytes    int64         `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`

	RedisAddr string `env:"REDIS_ADDR"`

	KafkaBroker       string `env:"KAFKA_BROKER"`
	KafkaRecordsTopic string `env:"KAFKA_RECORDS_TOPIC" envDefault:"records.upload.v1"`

	UploadRatePerSec float64 `env:"UPLOAD_RATE_PER_SEC" envDefault:"0.5"`
	UploadRateBurst  int     `env:"UPLOAD_RATE_BURST" envDefault:"2"`

	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads Config from the given variables instead of the process
// environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.RecordsAPIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.RecordsAPIBaseURL), "/")
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.RecordsAPIBaseURL == "":
		return errors.New("RECORDS_API_BASE_URL must not be empty")
	case c.RecordsAPITimeout <= 0:
		return errors.New("RECORDS_API_TIMEOUT must be positive")
	case c.MaxUploadBytes <= 0:
		return errors.New("MAX_UPLOAD_BYTES must be positive")
	case c.UploadRatePerSec <= 0 || c.UploadRateBurst <= 0:
		return errors.New("UPLOAD_RATE_PER_SEC and UPLOAD_RATE_BURST must be positive")
	}
	return nil
}
