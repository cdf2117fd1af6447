package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromBytes_EnvOverridesFile(t *testing.T) {
	data := []byte("device:\n  name: \"file-name\"\n  model: \"file-model\"")
	t.Setenv("DA_DEVICE_NAME", "env-name")

	cfg, err := LoadFromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Device.Name != "env-name" {
		t.Errorf("Name = %q, want env override", cfg.Device.Name)
	}
	if cfg.Device.Model != "file-model" {
		t.Errorf("Model = %q, want file value", cfg.Device.Model)
	}
}

func TestLoadFromBytes_Defaults(t *testing.T) {
	cfg, err := LoadFromBytes(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gateway.RequestTimeout.Duration != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s default", cfg.Gateway.RequestTimeout.Duration)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info default", cfg.Logging.Level)
	}
}

func TestLoadFromBytes_DurationString(t *testing.T) {
	data := []byte("gateway:\n  request_timeout: \"1m30s\"")

	cfg, err := LoadFromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gateway.RequestTimeout.Duration != 90*time.Second {
		t.Errorf("RequestTimeout = %v, want 1m30s", cfg.Gateway.RequestTimeout.Duration)
	}
}

func TestLoadFromBytes_InvalidDuration(t *testing.T) {
	data := []byte("gateway:\n  request_timeout: \"soon\"")

	if _, err := LoadFromBytes(data); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info default", cfg.Logging.Level)
	}
}

func TestWriteConfig_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Device.Name = "kiosk-7"

	if err := WriteConfig(cfg, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("config file is empty")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"debug level", func(c *Config) { c.Logging.Level = "debug" }, false},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"negative timeout", func(c *Config) { c.Gateway.RequestTimeout.Duration = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
