package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"mlb-scores-service/internal/app"
	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/poller"
)

const appVersion = "dev"

func main() {
	_ = godotenv.Load()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "mlb-scores-local",
		Version: appVersion,
	})

	cfg := config.LoadLocal()
	if cfg.LeagueID == "" {
		cfg.LeagueID = "mlb"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.NewLocal(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	p := poller.New(a.Pipeline.RunGated, logger, cfg.PollInterval)
	p.Start(ctx)

	mux := http.NewServeMux()
	if a.MetricsHandler != nil {
		mux.Handle("/metrics", a.MetricsHandler)
	}
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		if p.Status().IsReady() {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Metrics.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logging.Info(logger, "metrics server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = p.Stop(shutdownCtx)
	_ = srv.Shutdown(shutdownCtx)
	_ = a.Shutdown(shutdownCtx)
	logging.Info(logger, "shutdown complete")
}
