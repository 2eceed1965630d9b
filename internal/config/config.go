// Package config provides configuration structures and loading for launchdash.
package config

import "time"

// Dataset source kinds.
const (
	SourceCSV   = "csv"
	SourceMySQL = "mysql"
)

// Config represents the complete application configuration.
type Config struct {
	Dataset  DatasetConfig  `yaml:"dataset" mapstructure:"dataset"`
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// DatasetConfig describes where launch records are loaded from.
type DatasetConfig struct {
	Source string `yaml:"source" mapstructure:"source"` // csv or mysql
	Path   string `yaml:"path" mapstructure:"path"`     // CSV file path
	Table  string `yaml:"table" mapstructure:"table"`   // MySQL table name
}

// DatabaseConfig represents a MySQL database connection configuration.
// Only used when the dataset source is mysql.
type DatabaseConfig struct {
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Database           string `yaml:"database" mapstructure:"database"`
	TLS                string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// ServerConfig represents the dashboard HTTP server settings.
type ServerConfig struct {
	Address         string        `yaml:"address" mapstructure:"address"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
// The defaults serve spacex_launch_dash.csv on 127.0.0.1:8050.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Source: SourceCSV,
			Path:   "spacex_launch_dash.csv",
			Table:  "spacex_launches",
		},
		Database: DatabaseConfig{
			Port:               3306,
			TLS:                "preferred",
			MaxConnections:     4,
			MaxIdleConnections: 2,
		},
		Server: ServerConfig{
			Address:         "127.0.0.1:8050",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}
