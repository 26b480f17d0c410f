package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"invest-agent/config"
	httpLayer "invest-agent/http"
	"invest-agent/repository"
	"invest-agent/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "invest-agent",
		Short:         "Compound interest and Spanish buy-to-let profitability calculators",
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newCompoundCmd())
	root.AddCommand(newRealEstateCmd())

	return root
}

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "path to the YAML config file")

	return cmd
}

func newCache(ctx context.Context, cfg config.CacheConfig) (repository.CacheRepository, func()) {
	switch cfg.Backend {
	case config.CacheRedis:
		cache := repository.NewRedisCache(repository.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.TTL,
		})
		if err := cache.Ping(ctx); err != nil {
			log.Printf("Warning: redis at %s not reachable yet: %v", cfg.Redis.Addr, err)
		}
		return cache, func() {
			if err := cache.Close(); err != nil {
				log.Printf("Error closing redis client: %v", err)
			}
		}
	case config.CacheMemory:
		return repository.NewMemoryCache(), func() {}
	default:
		return nil, func() {}
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	cache, closeCache := newCache(ctx, cfg.Cache)
	defer closeCache()

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	handler := httpLayer.NewRouter(httpLayer.RouterDeps{
		CompoundInterest: service.NewCompoundInterestService(cache),
		RealEstate:       service.NewRealEstateService(cache),
		RateLimiter:      rateLimiter,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API listening on %s (cache: %s)", cfg.Server.Addr, cfg.Cache.Backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("starting server: %w", err)
	case <-quit:
		log.Println("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
	return nil
}
