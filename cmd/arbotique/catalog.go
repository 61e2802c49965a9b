package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"arbotique/internal/api"
	"arbotique/internal/api/handlers"
	"arbotique/internal/catalog"
	"arbotique/pkg/config"
	"arbotique/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	catalogPort string
	catalogTopK int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Start the built-in catalog recommender",
	Long:  `Start a rule-based recommender that serves the same /api/recommendations contract as the production model.`,
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogPort, "port", "", "Port to listen on (overrides CATALOG_PORT)")
	catalogCmd.Flags().IntVar(&catalogTopK, "top-k", 0, "Number of outfits to return (overrides CATALOG_TOP_K)")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if catalogPort != "" {
		cfg.Catalog.Port = catalogPort
	}
	if catalogTopK > 0 {
		cfg.Catalog.TopK = catalogTopK
	}

	if err := logger.Init(logger.Options{Level: cfg.Logger.Level, Console: cfg.Env == config.EnvDevelopment}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	outfits := catalog.Outfits()
	appLogger.Info("Starting catalog recommender",
		zap.Int("outfits", len(outfits)),
		zap.Int("top_k", cfg.Catalog.TopK),
	)

	app := api.SetupCatalogRouter(handlers.NewCatalogHandler(outfits, cfg.Catalog.TopK, appLogger), cfg.Server, appLogger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := ":" + cfg.Catalog.Port
		appLogger.Info("Catalog listening", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			return fmt.Errorf("catalog server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down catalog")
		return app.Shutdown()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
