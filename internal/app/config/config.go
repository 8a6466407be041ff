// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"stock_prediction/internal/feature/candles/domain/entity"
	"stock_prediction/internal/platform/logger"
)

const (
	ProviderYahoo      = "yahoo"
	ProviderTwelveData = "twelvedata"
)

type Config struct {
	Env    string       `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTP   HTTPConfig   `yaml:"http"`
	Market MarketConfig `yaml:"market"`

	CORSAllowOrigins []string `yaml:"cors_allow_origins" env:"CORS_ALLOW_ORIGINS" env-separator:"," env-default:"*"`
	CompaniesFile    string   `yaml:"companies_file" env:"COMPANIES_FILE"`
	RandomSeed       uint64   `yaml:"random_seed" env:"RANDOM_SEED" env-default:"0"`
}

type HTTPConfig struct {
	Host string `yaml:"host" env:"HOST" env-default:"0.0.0.0"`
	Port int    `yaml:"port" env:"PORT" env-default:"5000"`
}

// Addr returns host:port for http.Server.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, strconv.Itoa(h.Port))
}

type MarketConfig struct {
	Provider  string        `yaml:"provider" env:"MARKET_PROVIDER" env-default:"yahoo"`
	Timeout   time.Duration `yaml:"timeout" env:"MARKET_TIMEOUT" env-default:"10s"`
	Lookback  string        `yaml:"lookback" env:"MARKET_LOOKBACK" env-default:"1y"`
	RateLimit int           `yaml:"rate_limit" env:"MARKET_RATE_LIMIT" env-default:"0"`

	YahooBaseURL      string `yaml:"yahoo_base_url" env:"YAHOO_BASE_URL" env-default:"https://query1.finance.yahoo.com/v8/finance/chart"`
	TwelveDataAPIKey  string `yaml:"twelve_data_api_key" env:"TWELVE_DATA_API_KEY"`
	TwelveDataBaseURL string `yaml:"twelve_data_base_url" env:"TWELVE_DATA_BASE_URL" env-default:"https://api.twelvedata.com"`
}

// Period returns the validated lookback period.
func (m MarketConfig) Period() entity.Period {
	p, err := entity.ParsePeriod(m.Lookback)
	if err != nil {
		return entity.Period1Y
	}
	return p
}

// Load は .env（あれば）を読み込んだ後、環境変数から設定を構築します。
// CONFIG_PATH が設定されている場合はそのYAMLを読み、環境変数で上書きします。
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values cleanenv cannot express as tags.
func (c *Config) Validate() error {
	switch c.Env {
	case logger.EnvLocal, logger.EnvDev, logger.EnvProd:
	default:
		return fmt.Errorf("invalid APP_ENV %q", c.Env)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.HTTP.Port)
	}
	switch c.Market.Provider {
	case ProviderYahoo:
	case ProviderTwelveData:
		if c.Market.TwelveDataAPIKey == "" {
			return errors.New("TWELVE_DATA_API_KEY is required when MARKET_PROVIDER=twelvedata")
		}
	default:
		return fmt.Errorf("invalid MARKET_PROVIDER %q", c.Market.Provider)
	}
	if _, err := entity.ParsePeriod(c.Market.Lookback); err != nil {
		return fmt.Errorf("MARKET_LOOKBACK: %w", err)
	}
	if c.Market.Timeout <= 0 {
		return fmt.Errorf("invalid MARKET_TIMEOUT %s", c.Market.Timeout)
	}
	if c.Market.RateLimit < 0 {
		return fmt.Errorf("invalid MARKET_RATE_LIMIT %d", c.Market.RateLimit)
	}
	return nil
}
