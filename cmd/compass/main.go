package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeSquared-Agency/Compass/internal/api"
	"github.com/MikeSquared-Agency/Compass/internal/config"
	"github.com/MikeSquared-Agency/Compass/internal/events"
	"github.com/MikeSquared-Agency/Compass/internal/portfolio"
	"github.com/MikeSquared-Agency/Compass/internal/scoring"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Logging.SlogLevel()}))
	slog.SetDefault(logger)

	// Events (optional)
	var eventsClient events.Client
	if cfg.Events.URL != "" {
		ec, err := events.NewNATSClient(cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to event broker, running without events", "error", err)
		} else {
			eventsClient = ec
			defer ec.Close()
			logger.Info("connected to event broker")
		}
	}

	weights := scoring.WeightSet{
		scoring.KeyBusinessValue:        scoring.ClampWeight(cfg.Scoring.Weights.BusinessValue),
		scoring.KeyStrategicAlignment:   scoring.ClampWeight(cfg.Scoring.Weights.StrategicAlignment),
		scoring.KeyTechnicalFeasibility: scoring.ClampWeight(cfg.Scoring.Weights.TechnicalFeasibility),
		scoring.KeyImplementationEffort: scoring.ClampWeight(cfg.Scoring.Weights.ImplementationEffort),
		scoring.KeyChangeImpact:         scoring.ClampWeight(cfg.Scoring.Weights.ChangeImpact),
		scoring.KeyEthicalRisk:          scoring.ClampWeight(cfg.Scoring.Weights.EthicalRisk),
	}
	if !weights.IsValid() {
		logger.Warn("configured weights do not sum to 1.0", "sum", weights.Sum())
	}
	thresholds := scoring.ThresholdSet{
		Immediate: cfg.Scoring.Thresholds.Immediate,
		Strong:    cfg.Scoring.Thresholds.Strong,
	}
	if thresholds.Immediate <= thresholds.Strong {
		logger.Warn("thresholds misordered, strategic_bet tier will be unreachable",
			"immediate", thresholds.Immediate, "strong", thresholds.Strong)
	}

	// Session manager
	manager := portfolio.NewManager(weights, thresholds, func(sessionID string) {
		if eventsClient != nil {
			_ = eventsClient.Publish(events.SubjectSessionCreated(sessionID), events.SessionCreatedEvent{
				SessionID: sessionID,
			})
		}
	})

	// API server
	router := api.NewRouter(manager, eventsClient, cfg.Server.AdminToken, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Metrics server
	metricsRouter := api.NewMetricsRouter()
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: metricsRouter,
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}
