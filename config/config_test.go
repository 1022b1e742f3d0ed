package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type mockFS struct {
	files map[string]bool
	home  string
}

func (m *mockFS) Exists(path string) bool   { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }
func (m *mockFS) HomeDir() (string, error)  { return m.home, nil }

type testConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	HTTP          struct {
		BaseURL string `mapstructure:"base_url"`
		Timeout string `mapstructure:"timeout"`
	} `mapstructure:"http"`
}

func TestServiceConfigApplyDefaults(t *testing.T) {
	cfg := ServiceConfig{Name: "fetchctl", Debug: true}
	cfg.ApplyDefaults()
	if cfg.Environment != "development" {
		t.Errorf("expected 'development', got %q", cfg.Environment)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug logging when Debug is set, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.ServiceName != "fetchctl" {
		t.Errorf("expected logging service name propagated, got %q", cfg.Logging.ServiceName)
	}
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr string
	}{
		{"valid", ServiceConfig{Name: "svc", Environment: "production"}, ""},
		{"missing name", ServiceConfig{Environment: "production"}, "config.name is required"},
		{"invalid environment", ServiceConfig{Name: "svc", Environment: "qa"}, "config.environment must be one of"},
		{"invalid logging", ServiceConfig{Name: "svc", Environment: "staging"}, "config.logging"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			if tc.name != "invalid logging" {
				cfg.Logging.ApplyDefaults()
			}
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	yamlContent := `
name: fetchctl
environment: staging
http:
  base_url: https://api.example.com
  timeout: 5s
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cfg testConfig
	if err := LoadConfig("fetchctl", &cfg, WithConfigFile(configPath), WithEnvPrefix("FETCHKIT_TEST_NONE")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "fetchctl" || cfg.Environment != "staging" {
		t.Errorf("unexpected service config %+v", cfg.ServiceConfig)
	}
	if cfg.HTTP.BaseURL != "https://api.example.com" {
		t.Errorf("expected base url from file, got %q", cfg.HTTP.BaseURL)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("http:\n  base_url: https://file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FETCHKITTEST_HTTP_BASE_URL", "https://env")

	var cfg testConfig
	if err := LoadConfig("fetchctl", &cfg, WithConfigFile(configPath), WithEnvPrefix("fetchkittest")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.HTTP.BaseURL != "https://env" {
		t.Errorf("expected env to win, got %q", cfg.HTTP.BaseURL)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	var cfg testConfig
	err := LoadConfig("nonexistent-service", &cfg,
		WithFileSystem(&mockFS{}),
		WithEnvPrefix("FETCHKIT_TEST_NONE"),
		WithDefaults(map[string]any{"http.timeout": "30s"}),
	)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.HTTP.Timeout != "30s" {
		t.Errorf("expected default timeout, got %q", cfg.HTTP.Timeout)
	}
}

func TestResolveFiles(t *testing.T) {
	fs := &mockFS{
		home:  "/home/u",
		files: map[string]bool{"/home/u/.fetchctl/config.yml": true, "./.env": true},
	}
	files := ResolveFiles("fetchctl", LoaderConfig{FileSystem: fs})
	if files.ConfigFile != "/home/u/.fetchctl/config.yml" {
		t.Errorf("unexpected config file %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("unexpected env file %q", files.EnvFile)
	}

	explicit := ResolveFiles("fetchctl", LoaderConfig{FileSystem: fs, ConfigFile: "/etc/x.yml"})
	if explicit.ConfigFile != "/etc/x.yml" {
		t.Errorf("expected explicit path to win, got %q", explicit.ConfigFile)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	got := envKeyVariants("HTTP_BASE_URL")
	want := map[string]bool{
		"http_base_url": true,
		"http.base.url": true,
		"http.base_url": true,
		"http_base.url": true,
	}
	for _, v := range got {
		delete(want, v)
	}
	if len(want) != 0 {
		t.Errorf("missing variants %v in %v", want, got)
	}
	if single := envKeyVariants("NAME"); len(single) != 1 || single[0] != "name" {
		t.Errorf("unexpected single-part variants %v", single)
	}
}
