package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/DoyleJ11/lol-stats-backend/internal/catalog"
	"github.com/DoyleJ11/lol-stats-backend/internal/config"
	"github.com/DoyleJ11/lol-stats-backend/internal/httpapi"
	"github.com/DoyleJ11/lol-stats-backend/internal/hub"
	"github.com/DoyleJ11/lol-stats-backend/internal/logging"
	"github.com/DoyleJ11/lol-stats-backend/internal/recent"
	"github.com/DoyleJ11/lol-stats-backend/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store hub.Store
	if cfg.DatabaseURL != "" {
		events, err := storage.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer events.Close()
		store = events
		log.Info("planner events stored in postgres")
	} else {
		log.Info("DATABASE_URL not set, planner lobbies are memory only")
	}

	recents := recent.NewStore(ctx, cfg.RedisURL, cfg.RecentKey, cfg.RecentLimit, log)

	h := hub.NewHub(ctx, store, log)

	// Build the router *with* the hub injected
	handler := httpapi.SetupRoutes(httpapi.Deps{
		Hub:           h,
		Catalog:       catalog.New(),
		Recent:        recents,
		Log:           log,
		WSReadTimeout: cfg.WSReadTimeout,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		h.Send(hub.ShutdownHub{})
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
