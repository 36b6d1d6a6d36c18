package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "STOREFRONT"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Client  ClientConfig
	DB      DBConfig
	Catalog CatalogConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" default:"development"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// APIConfig configures the demo commerce API server.
type APIConfig struct {
	Port         string        `envconfig:"STOREFRONT_API_PORT" default:"8000"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_API_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_API_WRITE_TIMEOUT" default:"15s"`
}

// ClientConfig configures the terminal storefront client. BaseURL defaults to
// the local API; deployments point it at the hosted one.
type ClientConfig struct {
	BaseURL          string        `envconfig:"STOREFRONT_API_BASE_URL" default:"http://localhost:8000"`
	DemoEmail        string        `envconfig:"STOREFRONT_DEMO_EMAIL" default:"demo@example.com"`
	RequestTimeout   time.Duration `envconfig:"STOREFRONT_REQUEST_TIMEOUT" default:"10s"`
	NotifyDuration   time.Duration `envconfig:"STOREFRONT_NOTIFY_DURATION" default:"3s"`
	CheckoutRedirect time.Duration `envconfig:"STOREFRONT_CHECKOUT_REDIRECT_DELAY" default:"1500ms"`
}

type DBConfig struct {
	Path            string        `envconfig:"STOREFRONT_DB_PATH" default:"storefront.db"`
	MaxOpenConns    int           `envconfig:"STOREFRONT_DB_MAX_OPEN_CONNS" default:"1"`
	MaxIdleConns    int           `envconfig:"STOREFRONT_DB_MAX_IDLE_CONNS" default:"1"`
	ConnMaxLifetime time.Duration `envconfig:"STOREFRONT_DB_CONN_MAX_LIFETIME" default:"1h"`
}

// CatalogConfig controls demo catalog seeding on the API side.
type CatalogConfig struct {
	Seed bool `envconfig:"STOREFRONT_SEED_CATALOG" default:"true"`
}
