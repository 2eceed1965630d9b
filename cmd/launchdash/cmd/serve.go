package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dbsmedya/launchdash/internal/dashboard"
	"github.com/dbsmedya/launchdash/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the launch dashboard",
	Long: `Serve loads the launch records and starts the dashboard web server.

The page offers a launch site dropdown and a payload range slider. Changing
either control redraws the charts that depend on it:
  - success-pie-chart depends on the site dropdown
  - success-payload-scatter-chart depends on the site dropdown and payload slider

The server stops gracefully on SIGINT or SIGTERM.

Example:
  launchdash serve --data spacex_launch_dash.csv --addr 127.0.0.1:8050`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := loadDataset(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	app, err := dashboard.NewApp(d, log)
	if err != nil {
		return err
	}
	srv := dashboard.NewServer(app, cfg.Server, log)

	sigs, stop := notifySignals()
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		return waitForSignal(gctx, sigs, func(sig os.Signal) {
			log.Warnw("Received shutdown signal", "signal", sig.String())
		})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errInterrupted) {
		return err
	}
	return nil
}
