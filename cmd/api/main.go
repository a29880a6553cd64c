package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	apphttp "solar_lead_backend/internal/http"
	"solar_lead_backend/internal/http/router"
	"solar_lead_backend/internal/leads/agent"
	"solar_lead_backend/internal/leads/attributes"
	"solar_lead_backend/internal/leads/forwarder"
	"solar_lead_backend/internal/leads/ownership"
	"solar_lead_backend/internal/leads/pipeline"
	"solar_lead_backend/internal/leads/transform"
	"solar_lead_backend/internal/webhook"
	"solar_lead_backend/platform/config"
	"solar_lead_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Lead Pipeline
	// ========================================================================

	mapper, err := attributes.LoadDefault()
	if err != nil {
		log.Error("failed to load attribute rules", "error", err)
		panic("failed to load attribute rules: " + err.Error())
	}

	pipe := pipeline.New(
		ownership.NewChecker(initOwnerClassifier(cfg, log), log),
		transform.New(mapper),
		forwarder.New(cfg, log),
		log,
	)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			webhook.NewModule(pipe),
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// initOwnerClassifier returns nil when no API key is configured; undecided
// owner answers are then denied.
func initOwnerClassifier(cfg config.OwnerClassifierConfig, log *logger.Logger) ownership.Classifier {
	if !cfg.IsOwnerClassifierEnabled() {
		log.Warn("OPENAI_API_KEY not configured; owner classifier disabled")
		return nil
	}

	classifier, err := agent.New(cfg)
	if err != nil {
		log.Error("failed to initialize owner classifier", "error", err)
		return nil
	}
	return classifier
}
