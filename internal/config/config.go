// Package config loads server configuration from the environment, with
// optional .env file support for local development.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/oneshotleague/formrelay/pkg/logger"
	"github.com/oneshotleague/formrelay/pkg/mailer"
	"github.com/oneshotleague/formrelay/pkg/mailer/resend"
	"github.com/oneshotleague/formrelay/pkg/mailer/smtp"
)

// Delivery driver names accepted in DELIVERY_DRIVER.
const (
	DriverSMTP    = "smtp"
	DriverResend  = "resend"
	DriverWebhook = "webhook"
	DriverLog     = "log"
)

// ErrConfiguration indicates the environment is incomplete for the selected
// delivery driver.
var ErrConfiguration = errors.New("config: invalid configuration")

// Config is the full server configuration.
type Config struct {
	// Server
	Addr            string        `env:"SERVER_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Delivery strategy, selected once at startup.
	DeliveryDriver string `env:"DELIVERY_DRIVER" envDefault:"log"`

	// Recipient of relayed applications (smtp and resend drivers).
	RecipientEmail string `env:"RECIPIENT_EMAIL"`

	// Webhook driver target.
	WebhookURL string `env:"WEBHOOK_URL"`

	// CORS allow-list; empty means allow all origins.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Rate limit on the submit route.
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"5"`

	SMTP   smtp.Config
	Resend resend.Config
	Mailer mailer.Config
	Sentry logger.SentryConfig
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected delivery driver has everything it needs.
// Failing fast at startup beats discovering a half-configured relay on the
// first real submission.
func (c *Config) Validate() error {
	switch c.DeliveryDriver {
	case DriverSMTP:
		if err := c.SMTP.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		if c.RecipientEmail == "" {
			return fmt.Errorf("%w: RECIPIENT_EMAIL is required for the smtp driver", ErrConfiguration)
		}
	case DriverResend:
		if c.Resend.APIKey == "" || c.Resend.SenderEmail == "" {
			return fmt.Errorf("%w: RESEND_API_KEY and RESEND_FROM_EMAIL are required for the resend driver", ErrConfiguration)
		}
		if c.RecipientEmail == "" {
			return fmt.Errorf("%w: RECIPIENT_EMAIL is required for the resend driver", ErrConfiguration)
		}
	case DriverWebhook:
		if c.WebhookURL == "" {
			return fmt.Errorf("%w: WEBHOOK_URL is required for the webhook driver", ErrConfiguration)
		}
	case DriverLog:
		// No external dependencies.
	default:
		return fmt.Errorf("%w: unknown delivery driver %q", ErrConfiguration, c.DeliveryDriver)
	}

	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("%w: RATE_LIMIT_PER_MINUTE must be positive", ErrConfiguration)
	}
	return nil
}
