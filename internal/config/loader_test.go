package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")

	configContent := `
dataset:
  source: mysql
  table: launches

database:
  host: localhost
  port: 3307
  user: dash
  password: secret
  database: spacex
  tls: disable

server:
  address: 0.0.0.0:9050
  read_timeout: 3s
  shutdown_timeout: 1s

logging:
  level: debug
  format: json
  output: stderr
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Dataset.Source != SourceMySQL {
		t.Errorf("expected dataset source mysql, got %s", cfg.Dataset.Source)
	}
	if cfg.Dataset.Table != "launches" {
		t.Errorf("expected dataset table 'launches', got %s", cfg.Dataset.Table)
	}
	// Unset fields keep their defaults
	if cfg.Dataset.Path != "spacex_launch_dash.csv" {
		t.Errorf("expected default dataset path, got %s", cfg.Dataset.Path)
	}

	if cfg.Database.Host != "localhost" {
		t.Errorf("expected database host 'localhost', got %s", cfg.Database.Host)
	}
	if cfg.Database.Port != 3307 {
		t.Errorf("expected database port 3307, got %d", cfg.Database.Port)
	}
	if cfg.Database.MaxConnections != 4 {
		t.Errorf("expected default max_connections 4, got %d", cfg.Database.MaxConnections)
	}

	if cfg.Server.Address != "0.0.0.0:9050" {
		t.Errorf("expected server address '0.0.0.0:9050', got %s", cfg.Server.Address)
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("expected read timeout 3s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("expected default write timeout 30s, got %v", cfg.Server.WriteTimeout)
	}

	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" || cfg.Logging.Output != "stderr" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Address != DefaultConfig().Server.Address {
		t.Errorf("expected default address, got %s", cfg.Server.Address)
	}
}

func TestLoadNonExistentFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	if err := os.WriteFile(configPath, []byte("dataset: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestEnvVarSubstitution(t *testing.T) {
	t.Setenv("LAUNCHDASH_TEST_DATA", "/srv/data")
	t.Setenv("LAUNCHDASH_TEST_PASS", "hunter2")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "env.yaml")

	configContent := `
dataset:
  path: ${LAUNCHDASH_TEST_DATA}/launches.csv
database:
  password: $LAUNCHDASH_TEST_PASS
  user: ${LAUNCHDASH_TEST_MISSING}
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Dataset.Path != "/srv/data/launches.csv" {
		t.Errorf("expected substituted path, got %s", cfg.Dataset.Path)
	}
	if cfg.Database.Password != "hunter2" {
		t.Errorf("expected substituted password, got %s", cfg.Database.Password)
	}
	// Unknown variables are left untouched
	if cfg.Database.User != "${LAUNCHDASH_TEST_MISSING}" {
		t.Errorf("expected unresolved variable kept, got %s", cfg.Database.User)
	}
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	v.Set("server.address", "localhost:1234")
	v.Set("logging.level", "warn")

	cfg, err := LoadFromViper(v)
	if err != nil {
		t.Fatalf("LoadFromViper failed: %v", err)
	}

	if cfg.Server.Address != "localhost:1234" {
		t.Errorf("expected address 'localhost:1234', got %s", cfg.Server.Address)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level 'warn', got %s", cfg.Logging.Level)
	}
	if cfg.Dataset.Source != SourceCSV {
		t.Errorf("expected default source csv, got %s", cfg.Dataset.Source)
	}
}
