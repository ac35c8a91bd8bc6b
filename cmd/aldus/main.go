package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alleslabs/aldus-api/internal/common"
	"github.com/alleslabs/aldus-api/internal/config"
	"github.com/alleslabs/aldus-api/internal/dataset"
	"github.com/alleslabs/aldus-api/internal/entity"
	"github.com/alleslabs/aldus-api/internal/logger"
	"github.com/alleslabs/aldus-api/internal/metrics"
	"github.com/alleslabs/aldus-api/internal/service"
	"github.com/alleslabs/aldus-api/pkg/api"
	"github.com/alleslabs/aldus-api/pkg/api/docs"
	pkgconfig "github.com/alleslabs/aldus-api/pkg/config"
)

const (
	version = "1.0.0"
	banner  = `
╔═══════════════════════════════════════════╗
║             Aldus API v%s              ║
║     Curated chain data over HTTP          ║
╚═══════════════════════════════════════════╝
`
)

var (
	configPath string
	envFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aldus",
	Short: "Aldus API - read-only API over curated chain datasets",
	Long: `Aldus serves accounts, codes, contracts, modules, assets and entities from a tree
of JSON files laid out as {chain}/{network}/{dataset}.json, plus the global entity,
asset and chain registries.`,
	Version: version,
	RunE:    runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (default)",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "aldus %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with ALDUS_* overrides, ignored when absent")

	rootCmd.AddCommand(serveCmd, validateCmd, schemaCmd, versionCmd)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func loadConfig() (*pkgconfig.Config, error) {
	cfg, err := config.Load(configPath, config.WithEnvFile(envFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newLoader(cfg *pkgconfig.Config) *dataset.Loader {
	return dataset.NewLoader(
		dataset.NewResolver(cfg.Data.Root, cfg.Data.ModuleChain),
		logger.NewComponentLoggerFromConfig(common.ComponentDataset, cfg.Logging),
	)
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf(banner, version)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	log := logger.NewComponentLoggerFromConfig(common.ComponentAPI, cfg.Logging)
	defer func() { _ = log.Close() }()

	loader := newLoader(cfg)
	aggregator := entity.NewAggregator(
		loader,
		cfg.Data.AssetBaseURL,
		logger.NewComponentLoggerFromConfig(common.ComponentAggregator, cfg.Logging),
	)
	svc := service.New(loader, aggregator, log)

	if err := svc.Health(ctx); err != nil {
		log.Warnf("Data root %s is not ready: %v", cfg.Data.Root, err)
	}

	docs.SwaggerInfo.BasePath = cfg.API.BasePath

	apiServer := api.NewServer(&cfg.API, svc, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return apiServer.Start(gctx)
	})

	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		metricsServer := metrics.NewServer(
			cfg.Metrics,
			logger.NewComponentLoggerFromConfig(common.ComponentMetrics, cfg.Logging),
		)
		g.Go(func() error {
			return metricsServer.Run(gctx)
		})
	}

	log.Infof("Serving data from %s (module chain %s)", cfg.Data.Root, cfg.Data.ModuleChain)

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("Aldus API stopped")
	return nil
}
