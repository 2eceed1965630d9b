package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/launchdash/internal/config"
	"github.com/dbsmedya/launchdash/internal/database"
	"github.com/dbsmedya/launchdash/internal/dataset"
	"github.com/dbsmedya/launchdash/internal/logger"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	dataPath  string
	addr      string
)

var rootCmd = &cobra.Command{
	Use:   "launchdash",
	Short: "SpaceX launch records dashboard",
	Long: `An interactive web dashboard over SpaceX launch records.

Pick a launch site and a payload range to see:
  - Launch successes per site, or the success rate of one site
  - How payload mass correlates with launch outcome per booster category

Launch records are read from a CSV file or a MySQL table.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to configuration file (defaults are used when empty)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Dataset and server overrides
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "",
		"Override dataset with a CSV file path")
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "",
		"Override server listen address (host:port)")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	DataPath  string
	Addr      string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		DataPath:  dataPath,
		Addr:      addr,
	}
}

// loadConfig loads the config file, applies CLI overrides and validates the result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.DataPath, overrides.Addr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDataset reads launch records from the configured source.
func loadDataset(ctx context.Context, cfg *config.Config, log *logger.Logger) (*dataset.Dataset, error) {
	switch cfg.Dataset.Source {
	case config.SourceMySQL:
		dbManager := database.NewManager(&cfg.Database)
		if err := dbManager.Connect(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		defer dbManager.Close()

		d, err := dataset.LoadSQL(ctx, dbManager.DB, cfg.Dataset.Table)
		if err != nil {
			return nil, err
		}
		log.Infow("Loaded launch records",
			"source", config.SourceMySQL,
			"table", cfg.Dataset.Table,
			"records", d.Len(),
		)
		return d, nil

	default:
		d, err := dataset.LoadCSV(cfg.Dataset.Path)
		if err != nil {
			return nil, err
		}
		log.Infow("Loaded launch records",
			"source", config.SourceCSV,
			"path", cfg.Dataset.Path,
			"records", d.Len(),
		)
		return d, nil
	}
}
