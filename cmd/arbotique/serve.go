package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"arbotique/internal/api"
	"arbotique/internal/api/handlers"
	"arbotique/internal/service"
	"arbotique/internal/wizard"
	"arbotique/pkg/config"
	"arbotique/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stylist API server",
	Long:  `Start the HTTP API that drives the recommendation wizard and proxies the recommender with fallback outfits.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides SERVER_PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if servePort != "" {
		cfg.Server.Port = servePort
	}

	if err := logger.Init(logger.Options{Level: cfg.Logger.Level, Console: cfg.Env == config.EnvDevelopment}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting ARBotique stylist",
		zap.String("env", cfg.Env),
		zap.String("recommender", cfg.Recommender.APIBase),
	)

	client, err := service.NewRecommenderClient(&cfg.Recommender, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize recommender client: %w", err)
	}

	recService := service.NewRecommendationService(client, appLogger)
	monitor := service.NewHealthMonitor(client, cfg.Recommender.HealthCheckInterval, appLogger)
	store := wizard.NewStore(recService, cfg.Session.IdleTimeout)

	app := api.SetupRouter(api.Handlers{
		Health:         handlers.NewHealthHandler(monitor),
		Recommendation: handlers.NewRecommendationHandler(recService, appLogger),
		Session:        handlers.NewSessionHandler(store, appLogger),
	}, store, cfg.Server, appLogger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return monitor.Run(gctx)
	})
	g.Go(func() error {
		return store.Run(gctx, cfg.Session.CleanupInterval, func(n int) {
			appLogger.Info("Evicted idle sessions", zap.Int("count", n), zap.Int("remaining", store.Len()))
		})
	})
	g.Go(func() error {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server")
		return app.Shutdown()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		return err
	}
	appLogger.Info("Server stopped")
	return nil
}
