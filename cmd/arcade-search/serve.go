package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aryannaik/arcade-search/internal/index"
	"github.com/aryannaik/arcade-search/internal/render"
	"github.com/aryannaik/arcade-search/internal/server"
)

var (
	flagServePort  int
	flagServeWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search page, dropdown preview and JSON API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&flagServePort, "port", 0, "Override http.port")
	serveCmd.Flags().BoolVar(&flagServeWatch, "watch", false, "Reload the index when the content file changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, env, err := loadConfig()
	if err != nil {
		return err
	}
	if flagServePort > 0 {
		cfg.HTTP.Port = flagServePort
	}
	if cmd.Flags().Changed("watch") {
		cfg.Content.Watch = flagServeWatch
	}

	log, err := newLogger(env, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting arcade-search",
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("content_source", cfg.Content.Source),
		zap.String("base_url", cfg.Site.BaseURL),
	)

	store := index.NewStore(index.NewSource(cfg.Content.Source, cfg.Content.Build), log)

	// Warm the cache; a failure here is not fatal, requests retry the load.
	if _, err := store.Load(cmd.Context()); err != nil {
		log.Warn("Content index not loaded at startup", zap.Error(err))
	}

	renderer, err := render.New(render.Site{
		Name:       cfg.Site.Name,
		BaseURL:    cfg.Site.BaseURL,
		DebounceMS: cfg.Search.DebounceMS,
	})
	if err != nil {
		return fmt.Errorf("cannot parse templates: %w", err)
	}

	handler := server.NewRouter(store, renderer, server.Options{
		BaseURL:      cfg.Site.BaseURL,
		StaticDir:    cfg.Site.StaticDir,
		PageSize:     cfg.Search.PageSize,
		PreviewLimit: cfg.Search.PreviewLimit,
	}, log)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Content.Watch && !cfg.IsRemoteContent() {
		go func() {
			if err := store.Watch(ctx, strings.TrimPrefix(cfg.Content.Source, "file://")); err != nil {
				log.Error("Content watcher stopped", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during shutdown", zap.Error(err))
	}

	log.Info("Server stopped gracefully")
	return nil
}
