package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"filescan/internal/api"
	"filescan/internal/api/handler/v1handler"
	"filescan/internal/config"
	"filescan/internal/scan"
	"filescan/internal/upload"
	"filescan/internal/worker"
	"filescan/pkg/blobstore/s3"
	"filescan/pkg/filescanner/vtotal"
	"filescan/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// remoteHTTPTimeout bounds one request to the remote scanning service. File
// uploads of tens of megabytes need headroom; polling requests finish fast.
const remoteHTTPTimeout = 2 * time.Minute

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			blobs, err := s3.New(ctx, s3.Options{
				Endpoint:       cfg.Blob.Endpoint,
				Region:         cfg.Blob.Region,
				Bucket:         cfg.Blob.Bucket,
				AccessKey:      cfg.Blob.AccessKey,
				SecretKey:      cfg.Blob.SecretKey,
				ForcePathStyle: cfg.Blob.ForcePathStyle,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create blob store", zap.Error(err))
			}

			client := vtotal.New(&http.Client{Timeout: remoteHTTPTimeout},
				cfg.Scanner.BaseURL, cfg.Scanner.APIKey)

			resolver := scan.New(client, scan.NewOptions(cfg))
			uploader := upload.New(resolver, pgsql, blobs, upload.NewOptions(cfg))

			// background rescans share the poller but run off their own attempt
			// budget
			poller := scan.NewPoller(client, scan.PollerOptions{Interval: cfg.Scanner.PollInterval})
			rescan := worker.NewRescanWorker(poller, pgsql, blobs, worker.NewOptions(cfg))
			riverClient, err := worker.Start(ctx, pgsql.Pool, rescan)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{Uploader: uploader},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop background workers", zap.Error(err))
			}
		},
	}

	return cmd
}
