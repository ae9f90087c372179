package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	ierr "github.com/tillcore/tillcore/internal/errors"
	"github.com/tillcore/tillcore/internal/types"
)

// Configuration holds the engine's runtime settings. The pricing section
// carries form-level defaults only; all reference data (products, schemes)
// is supplied per session as an immutable snapshot, never via config.
type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Pricing    PricingConfig    `mapstructure:"pricing"`
}

type DeploymentConfig struct {
	Mode types.RunMode `mapstructure:"mode" default:"local"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" default:"info"`
}

type PricingConfig struct {
	// Currency drives the rounding precision applied at the payload boundary.
	Currency string `mapstructure:"currency" default:"usd"`

	// DefaultTaxPercent pre-fills the invoice tax percentage for new forms.
	// Users can still edit either tax field afterwards.
	DefaultTaxPercent string `mapstructure:"default_tax_percent" default:"0"`
}

// NewConfig loads configuration from config.yaml and the environment.
// Environment variables use the TILLCORE_ prefix, e.g. TILLCORE_LOGGING_LEVEL.
func NewConfig() (*Configuration, error) {
	v := viper.New()

	// Optional .env for local development; ignore if absent.
	_ = godotenv.Load()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TILLCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, ierr.WithError(err).
				WithHint("Failed to read configuration file").
				Mark(ierr.ErrInternal)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to unmarshal configuration").
			Mark(ierr.ErrInternal)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(types.ModeLocal))
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("pricing.currency", types.DefaultCurrency)
	v.SetDefault("pricing.default_tax_percent", "0")
}

// Validate checks the configuration for obviously broken values.
func (c *Configuration) Validate() error {
	if c.Pricing.Currency == "" {
		return ierr.NewError("pricing currency is required").
			WithHint("Set pricing.currency or TILLCORE_PRICING_CURRENCY").
			Mark(ierr.ErrValidation)
	}
	if _, ok := types.CoerceDecimal(c.Pricing.DefaultTaxPercent); !ok {
		return ierr.NewErrorf("invalid default tax percent: %s", c.Pricing.DefaultTaxPercent).
			WithHint("pricing.default_tax_percent must be a number").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// GetDefaultConfig returns a configuration suitable for tests and scripts
// without touching the filesystem or environment.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelInfo},
		Pricing: PricingConfig{
			Currency:          types.DefaultCurrency,
			DefaultTaxPercent: "0",
		},
	}
}
