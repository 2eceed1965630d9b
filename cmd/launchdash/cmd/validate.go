package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/launchdash/internal/config"
	"github.com/dbsmedya/launchdash/internal/dashboard"
	"github.com/dbsmedya/launchdash/internal/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration, dataset and dashboard wiring",
	Long: `Validate checks the configuration and loads the dataset without
starting the server.

Checks performed:
  - Configuration syntax and required fields
  - Dataset source is readable (CSV file or MySQL table)
  - Every record has the required columns and a 0/1 outcome
  - Every chart handler is wired to controls on the page

Example:
  launchdash validate --config launchdash.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cmd.Printf("\n=== Configuration Validation ===\n")
	if f := GetConfigFile(); f != "" {
		cmd.Printf("Config file: %s\n", f)
	} else {
		cmd.Printf("Config file: (defaults)\n")
	}

	cfg, err := loadConfig()
	if err != nil {
		cmd.Printf("❌ Configuration invalid: %v\n", err)
		return fmt.Errorf("validation failed")
	}
	cmd.Printf("✅ Configuration valid\n\n")

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cmd.Printf("--- Dataset ---\n")
	switch cfg.Dataset.Source {
	case config.SourceMySQL:
		cmd.Printf("Source: mysql table %s on %s:%d\n", cfg.Dataset.Table, cfg.Database.Host, cfg.Database.Port)
	default:
		cmd.Printf("Source: csv file %s\n", cfg.Dataset.Path)
	}

	d, err := loadDataset(ctx, cfg, log)
	if err != nil {
		cmd.Printf("❌ Dataset failed to load: %v\n", err)
		return fmt.Errorf("validation failed")
	}
	cmd.Printf("Records: %d\n", d.Len())
	cmd.Printf("Sites: %d\n", len(d.Sites()))
	cmd.Printf("Payload range: %g - %g kg\n", d.MinPayload(), d.MaxPayload())
	cmd.Printf("✅ Dataset loaded\n\n")

	cmd.Printf("--- Dashboard ---\n")
	app, err := dashboard.NewApp(d, log)
	if err != nil {
		cmd.Printf("❌ Wiring invalid: %v\n", err)
		return fmt.Errorf("validation failed")
	}
	deps := app.Registry.Dependencies()
	for _, output := range app.Registry.Outputs() {
		cmd.Printf("%s <- %v\n", output, deps[output])
	}
	cmd.Printf("✅ Wiring valid\n\n")

	cmd.Println("=== Validation Complete ===")
	return nil
}
