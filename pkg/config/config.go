package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	EDMSBaseURL     string        `env:"EDMS_BASE_URL"`
	EDMSUsername    string        `env:"EDMS_USERNAME"`
	EDMSPassword    string        `env:"EDMS_PASSWORD"`
	EDMSHTTPTimeout time.Duration `env:"EDMS_HTTP_TIMEOUT" envDefault:"30s"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
