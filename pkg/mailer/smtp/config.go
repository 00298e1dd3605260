package smtp

import "errors"

// Config holds SMTP transport configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host       string `env:"SMTP_HOST"`
	Port       int    `env:"SMTP_PORT" envDefault:"587"`
	Secure     bool   `env:"SMTP_SECURE"` // implicit TLS (port 465) instead of STARTTLS
	Username   string `env:"SMTP_USER"`
	Password   string `env:"SMTP_PASSWORD"`
	SenderName string `env:"SMTP_FROM_NAME"`
}

// ErrMissingConfig indicates required SMTP settings are absent.
// Host, username, and password have no usable defaults.
var ErrMissingConfig = errors.New("smtp: host, username, and password are required")

// Validate checks that all required settings are present.
func (c Config) Validate() error {
	if c.Host == "" || c.Username == "" || c.Password == "" {
		return ErrMissingConfig
	}
	return nil
}
