package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/kbukum/fetchkit/config"
	"github.com/kbukum/fetchkit/httpclient"
	"github.com/kbukum/fetchkit/observability"
	"github.com/kbukum/fetchkit/validation"
	"github.com/kbukum/fetchkit/version"
)

const (
	serviceName = "fetchctl"
	envPrefix   = "FETCHCTL"
)

// Config is fetchctl's configuration. Sources, lowest precedence first:
// config file, .env file, FETCHCTL_* environment, command-line flags.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	HTTP       httpclient.Config          `yaml:"http" mapstructure:"http"`
	Credential string                     `yaml:"credential" mapstructure:"credential"`
	Output     string                     `yaml:"output" mapstructure:"output"`
	Tracing    observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics    observability.MeterConfig  `yaml:"metrics" mapstructure:"metrics"`
}

// ApplyDefaults fills unset fields after loading.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.HTTP.ApplyDefaults()
	if c.Output == "" {
		c.Output = outputJSON
	}

	defaultTelemetry(&c.Tracing.ServiceName, &c.Tracing.ServiceVersion, &c.Tracing.Environment, c)
	defaultTelemetry(&c.Metrics.ServiceName, &c.Metrics.ServiceVersion, &c.Metrics.Environment, c)
	if c.Tracing.Endpoint == "" {
		c.Tracing.Endpoint = observability.DefaultTracerConfig(c.Name).Endpoint
	}
	if c.Tracing.SampleRate == 0 {
		c.Tracing.SampleRate = 1.0
	}
	if c.Metrics.Endpoint == "" {
		c.Metrics.Endpoint = observability.DefaultMeterConfig(c.Name).Endpoint
	}
}

func defaultTelemetry(name, ver, env *string, c *Config) {
	if *name == "" {
		*name = c.Name
	}
	if *ver == "" {
		*ver = version.Get().String()
	}
	if *env == "" {
		*env = c.Environment
	}
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.HTTP.Validate(); err != nil {
		return err
	}
	if err := validateOutputFormat(c.Output); err != nil {
		return err
	}

	v := validation.New()
	v.Check(c.Tracing.SampleRate > 0 && c.Tracing.SampleRate <= 1, "tracing.sample_rate", "must be in (0, 1]")
	if c.Tracing.Enabled {
		v.Required("tracing.endpoint", c.Tracing.Endpoint)
	}
	if c.Metrics.Enabled {
		v.Required("metrics.endpoint", c.Metrics.Endpoint)
	}
	return v.Validate()
}

// loadConfig merges file and environment configuration with global flags.
func loadConfig(c *cli.Context) (*Config, error) {
	var cfg Config
	if err := config.LoadConfig(
		serviceName,
		&cfg,
		config.WithConfigFile(c.GlobalString(flagConfig)),
		config.WithEnvPrefix(envPrefix),
	); err != nil {
		return nil, errors.Wrap(err, "error loading configuration")
	}

	if c.GlobalIsSet(flagBaseURL) {
		cfg.HTTP.BaseURL = c.GlobalString(flagBaseURL)
	}
	if c.GlobalIsSet(flagCredential) {
		cfg.Credential = c.GlobalString(flagCredential)
	}
	if c.GlobalIsSet(flagTimeout) {
		cfg.HTTP.Timeout = c.GlobalDuration(flagTimeout)
	}
	if c.GlobalIsSet(flagOutput) {
		cfg.Output = strings.ToLower(c.GlobalString(flagOutput))
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}
