package config

import (
	"strings"
	"testing"
)

func mysqlConfig() *Config {
	cfg := DefaultConfig()
	cfg.Dataset.Source = SourceMySQL
	cfg.Database.Host = "localhost"
	cfg.Database.User = "dash"
	cfg.Database.Database = "spacex"
	return cfg
}

func TestValidMySQLConfig(t *testing.T) {
	if err := mysqlConfig().Validate(); err != nil {
		t.Errorf("expected no validation errors, got: %v", err)
	}
}

func TestDatabaseIgnoredForCSVSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Port = -1

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected database section to be ignored for csv, got: %v", err)
	}
}

func TestValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"unknown source", func(c *Config) { c.Dataset.Source = "parquet" }, "dataset.source"},
		{"empty csv path", func(c *Config) { c.Dataset.Path = "" }, "dataset.path"},
		{"bad address", func(c *Config) { c.Server.Address = "8050" }, "server.address"},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeout = -1 }, "server"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error mentioning %q, got: %v", tt.field, err)
			}
		})
	}
}

func TestMySQLValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing table", func(c *Config) { c.Dataset.Table = "" }, "dataset.table"},
		{"missing host", func(c *Config) { c.Database.Host = "" }, "database.host"},
		{"invalid port", func(c *Config) { c.Database.Port = 70000 }, "database.port"},
		{"missing user", func(c *Config) { c.Database.User = "" }, "database.user"},
		{"missing database", func(c *Config) { c.Database.Database = "" }, "database.database"},
		{"invalid tls", func(c *Config) { c.Database.TLS = "sometimes" }, "database.tls"},
		{"negative connections", func(c *Config) { c.Database.MaxConnections = -2 }, "database.max_connections"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := mysqlConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error mentioning %q, got: %v", tt.field, err)
			}
		})
	}
}

func TestValidationErrorsCollectsAll(t *testing.T) {
	cfg := mysqlConfig()
	cfg.Database.Host = ""
	cfg.Database.User = ""
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(verrs), verrs)
	}
	if !strings.HasPrefix(err.Error(), "validation failed:") {
		t.Errorf("unexpected error text: %s", err.Error())
	}
}

func TestEmptyValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.Error() != "" {
		t.Errorf("expected empty string, got %q", errs.Error())
	}
}
