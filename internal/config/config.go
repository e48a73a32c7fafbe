package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// HTTPConfig holds listener and cross-origin settings.
type HTTPConfig struct {
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s" validate:"gt=0"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s" validate:"gt=0"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`
	AllowOrigins    string        `envconfig:"CORS_ALLOW_ORIGINS" default:"*" validate:"required"`
}

// TracingConfig mirrors the standard OTEL_* environment variables.
type TracingConfig struct {
	Disabled    bool   `envconfig:"SDK_DISABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"bugtracker" validate:"required"`
	Protocol    string `envconfig:"EXPORTER_OTLP_PROTOCOL" default:"grpc" validate:"oneof=grpc http/protobuf"`
	Endpoint    string `envconfig:"EXPORTER_OTLP_ENDPOINT"`
	Sampler     string `envconfig:"TRACES_SAMPLER" default:"parentbased_traceidratio"`
	SamplerArg  string `envconfig:"TRACES_SAMPLER_ARG" default:"1.0" validate:"numeric"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables; a .env file is honoured when
// the binary imports github.com/joho/godotenv/autoload.
type AppConfig struct {
	Env      string `envconfig:"APP_ENV" default:"development" validate:"oneof=development production test"`
	Port     string `envconfig:"PORT" default:"3000" validate:"required,numeric"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Timezone string `envconfig:"APP_TIMEZONE" default:"UTC" validate:"required,timezone"`

	// PublicURL is where clients reach this instance. The API description
	// advertises it as the server entry and the docs page loads the
	// description from it.
	PublicURL string `envconfig:"PUBLIC_URL" default:"http://localhost:3000" validate:"required,url"`
	// ProductionURL is the base URL reported for production deployments.
	ProductionURL string `envconfig:"PRODUCTION_URL" default:"https://your-api-domain.com" validate:"required,url"`

	HTTP    HTTPConfig    `envconfig:"HTTP"`
	Tracing TracingConfig `envconfig:"OTEL"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report the environment variable name instead of the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("envconfig"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// Load reads configuration from environment variables and validates it.
// Real environment variables take precedence over values from a .env file.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its validate tag.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *AppConfig) Addr() string {
	return ":" + c.Port
}

// IsProduction reports whether APP_ENV is production.
func (c *AppConfig) IsProduction() bool {
	return c.Env == EnvProduction
}

// BaseURL returns the environment-dependent base URL of the service.
// The docs page does not use it; see DocumentURL.
func (c *AppConfig) BaseURL() string {
	if c.IsProduction() {
		return strings.TrimRight(c.ProductionURL, "/")
	}
	return strings.TrimRight(c.PublicURL, "/")
}

// DocumentURL is the absolute URL of the served API description.
func (c *AppConfig) DocumentURL() string {
	return strings.TrimRight(c.PublicURL, "/") + "/openapi"
}

// DocsPageURL is the absolute URL of the Scalar reference page.
func (c *AppConfig) DocsPageURL() string {
	return strings.TrimRight(c.PublicURL, "/") + "/scalar"
}

// Location resolves Timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
