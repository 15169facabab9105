package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/lanebreak/tenpin/internal/adapters/http/api"
	"github.com/lanebreak/tenpin/internal/adapters/repository"
	"github.com/lanebreak/tenpin/internal/config"
	"github.com/lanebreak/tenpin/internal/domain/catalog"
	"github.com/lanebreak/tenpin/internal/engine"
	"github.com/lanebreak/tenpin/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Disable default Go metrics collection to avoid duplicate metrics;
	// the engine registers its own on a custom registry.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	cat, err := catalog.Load()
	if err != nil {
		log.Error(ctx, "failed to load catalogs", logger.Error(err))
		return
	}

	store, err := repository.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Error(ctx, "failed to open save store", logger.Error(err))
		return
	}
	registry := repository.NewRegistry(store, cfg.SaveSlots)

	svc := engine.New(cat, registry,
		engine.WithLogger(log.Named("engine")),
		engine.WithSeed(cfg.RandomSeed),
		engine.WithConstants(engine.Constants{
			MaxEnergy:            cfg.MaxEnergy,
			SeasonLength:         cfg.SeasonLength,
			StartingMoney:        cfg.StartingMoney,
			StartingEnergy:       cfg.StartingEnergy,
			WeeklyChallengeCount: cfg.WeeklyChallengeCount,
			GameEnergyCost:       cfg.GameEnergyCost,
			GamePrize:            cfg.GamePrize,
			LowEnergyThreshold:   cfg.LowEnergyThreshold,
			InjuryChance:         cfg.InjuryChance,
			SlumpChance:          cfg.SlumpChance,
			EventChance:          cfg.EventChance,
			MajorEventChance:     cfg.MajorEventChance,
			RegionReputation:     cfg.RegionReputation,
		}),
	)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			stop()
		}
	}()

	<-ctx.Done()

	log.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "graceful shutdown failed", logger.Error(err))
	}
}
