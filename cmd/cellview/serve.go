package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/cellview"
	"github.com/aretw0/cellview/internal/config"
	"github.com/aretw0/cellview/internal/presentation/tui"
	httpAdapter "github.com/aretw0/cellview/pkg/adapters/http"
	"github.com/aretw0/cellview/pkg/adapters/memory"
	"github.com/aretw0/cellview/pkg/adapters/redis"
	"github.com/aretw0/cellview/pkg/domain"
	"github.com/aretw0/cellview/pkg/observability"
	"github.com/aretw0/cellview/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP render server",
	Long: `Starts the HTTP surface: POST /render for one-shot fragments and /regions/{id}
for named output regions, plus /metrics when server.metrics is enabled.
Regions live in memory unless redis.addr is configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
		}

		var hooks domain.Hooks
		reg := prometheus.NewRegistry()
		if cfg.Server.Metrics {
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			hooks = observability.NewMetrics(reg).Hooks()
		}
		engine := newEngine(cfg, logger, hooks)

		surface, closeSurface, err := openSurface(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer closeSurface()

		router := chi.NewRouter()
		if cfg.Server.Metrics {
			router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		}
		router.Mount("/", httpAdapter.NewHandler(engine, surface))

		srv := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: router,
		}

		tui.PrintBanner(cmd.ErrOrStderr(), cellview.Version)

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("Starting cellview server", "addr", srv.Addr, "metrics", cfg.Server.Metrics)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil

		case sig := <-shutdown:
			logger.Info("Start shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("Graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("failed to close server: %w", err)
				}
			}
			logger.Info("cellview server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on (overrides server.addr)")
}

// openSurface returns the region store named by cfg and a function releasing it.
func openSurface(ctx context.Context, cfg config.Config, logger *slog.Logger) (ports.Surface, func(), error) {
	if cfg.Redis.Addr == "" {
		logger.Debug("Using in-memory regions")
		return memory.NewSurface(), func() {}, nil
	}

	surface := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
		redis.WithPrefix(cfg.Redis.Prefix),
		redis.WithTTL(cfg.Redis.TTL),
	)
	if err := surface.Ping(ctx); err != nil {
		surface.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}
	logger.Info("Using redis regions", "addr", cfg.Redis.Addr, "prefix", cfg.Redis.Prefix)
	return surface, func() {
		if err := surface.Close(); err != nil {
			logger.Warn("failed to close redis client", "error", err)
		}
	}, nil
}
