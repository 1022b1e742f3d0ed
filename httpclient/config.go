package httpclient

import (
	"time"

	"github.com/kbukum/fetchkit/errors"
	"github.com/kbukum/fetchkit/validation"
)

const (
	defaultName    = "http"
	defaultTimeout = 30 * time.Second
)

// Config configures the HTTP transport.
type Config struct {
	// Name identifies the adapter in logs, spans and metrics. Defaults to "http".
	Name string `yaml:"name" mapstructure:"name"`

	// BaseURL is prepended to relative request addresses.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// Timeout bounds a whole request including reading the body. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are sent with every request. Request headers with the same
	// canonical key replace them.
	Headers map[string]string `yaml:"headers" mapstructure:"headers" validate:"dive,keys,header_name,endkeys,header_value"`

	// TLS configures the client side of TLS connections.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = defaultName
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return errors.InvalidConfig("httpclient", "timeout must be positive")
	}
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.TLS.Validate()
}
