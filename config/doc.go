// Package config loads service configuration from a YAML file, an optional
// .env file and prefixed environment variables, using Viper.
//
// # Usage
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    HTTP httpclient.Config `yaml:"http" mapstructure:"http"`
//	}
//
//	var cfg Config
//	err := config.LoadConfig("fetchctl", &cfg, config.WithEnvPrefix("FETCHCTL"))
//
// With the prefix FETCHCTL, FETCHCTL_HTTP_BASE_URL sets http.base_url.
package config
