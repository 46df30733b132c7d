package main

import (
	"context"
	"errors"
	"fmt"
	"mangatrade/internal/api"
	"mangatrade/internal/api/handler/v1handler"
	"mangatrade/internal/bot"
	"mangatrade/internal/config"
	"mangatrade/internal/trading"
	"mangatrade/pkg/logger"
	"mangatrade/pkg/metrics"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// runServer serves HTTP until ctx is done, then shuts down gracefully.
func runServer(ctx context.Context, cfg *config.Config, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("could not start webserver: %w", err)
	case <-ctx.Done():
	}

	logger.Info(ctx, "stopping webserver...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.GracefulShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not stop webserver: %w", err)
	}

	return nil
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server and the Discord bot",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := cfg.ValidateBot(); err != nil {
				logger.Fatal(ctx, "invalid discord config", zap.Error(err))
			}

			strg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			if cfg.Storage.AutoMigrate {
				if err := strg.Migrate(ctx); err != nil {
					logger.Fatal(ctx, "could not migrate storage", zap.Error(err))
				}
			}

			meterProvider, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			defer func() {
				if err := meterProvider.Shutdown(context.WithoutCancel(ctx)); err != nil {
					logger.Warn(ctx, "could not shutdown meter provider", zap.Error(err))
				}
			}()

			svc, err := trading.New(strg, trading.Options{MeterProvider: meterProvider})
			if err != nil {
				logger.Fatal(ctx, "could not create trading service", zap.Error(err))
			}

			server, err := api.NewServer(api.Deps{
				Deps: v1handler.Deps{
					Trading:      svc,
					DisplayLimit: cfg.Lists.DisplayLimit,
				},
				Ping: strg.Ping,
			}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return runServer(gctx, cfg, server)
			})

			if cfg.Discord.Enabled {
				b, err := bot.New(svc, bot.NewOptions(cfg))
				if err != nil {
					logger.Fatal(ctx, "could not create discord bot", zap.Error(err))
				}
				g.Go(func() error {
					return b.Run(gctx)
				})
			} else {
				logger.Info(ctx, "discord bot is disabled")
			}

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "service stopped with error", zap.Error(err))
			}
		},
	}

	return cmd
}
