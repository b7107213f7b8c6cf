package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pcheek13/MMM-LiveStats/internal/api/rest"
	"github.com/pcheek13/MMM-LiveStats/internal/api/websocket"
	"github.com/pcheek13/MMM-LiveStats/internal/cache"
	"github.com/pcheek13/MMM-LiveStats/internal/config"
	"github.com/pcheek13/MMM-LiveStats/internal/espn"
	"github.com/pcheek13/MMM-LiveStats/internal/gamedata"
	"github.com/pcheek13/MMM-LiveStats/internal/publisher"
	"github.com/pcheek13/MMM-LiveStats/internal/scheduler"
)

const (
	serviceName    = "livestats"
	serviceVersion = "1.0.0"
)

func main() {
	configPath := flag.String("config", getEnv("LIVESTATS_CONFIG", ""), "path to YAML configuration file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info("starting", "service", serviceName, "version", serviceVersion)

	raw := &config.Raw{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("failed to load configuration", "path", *configPath, "error", err)
			os.Exit(1)
		}
		raw = loaded
	}
	applyEnvOverrides(raw)

	resolved := config.Normalize(raw)
	logger.Info("configuration resolved",
		"league", resolved.League,
		"team", resolved.FavoriteTeamID,
		"interval", resolved.UpdateInterval,
		"maxUpcoming", resolved.MaxUpcoming,
	)

	client := espn.New(raw.Server.ESPNAPIBase)

	var serviceOpts []gamedata.Option
	var redisCache *cache.RedisCache
	if raw.Server.RedisURL != "" {
		var err error
		redisCache, err = cache.NewRedisCache(raw.Server.RedisURL)
		if err != nil {
			logger.Warn("redis cache unavailable, continuing without it", "error", err)
		} else {
			defer redisCache.Close()
			serviceOpts = append(serviceOpts, gamedata.WithCache(redisCache))
			logger.Info("connected to redis cache")
		}
	}

	service := gamedata.NewService(client, logger, serviceOpts...)

	wsServer := websocket.NewServer(logger)
	restHandler := rest.NewHandler()

	sinks := []scheduler.Sink{wsServer, restHandler}
	if raw.Server.RedisURL != "" {
		streamPublisher, err := publisher.NewRedisStreamPublisher(raw.Server.RedisURL)
		if err != nil {
			logger.Warn("redis publisher unavailable, continuing without it", "error", err)
		} else {
			defer streamPublisher.Close()
			sinks = append(sinks, streamPublisher)
			logger.Info("redis stream publisher initialized")
		}
	}

	sched := scheduler.New(service, logger, sinks...)
	restHandler.SetStatusReporter(sched)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched.Configure(ctx, resolved)

	restServer := rest.NewServer(getEnv("REST_PORT", portOrDefault(raw.Server.RESTPort, "8080")), restHandler)
	go func() {
		if err := restServer.Start(); err != nil {
			logger.Error("rest server stopped", "error", err)
		}
	}()

	wsPort := getEnv("WS_PORT", portOrDefault(raw.Server.WSPort, "8081"))
	go func() {
		if err := wsServer.Start(wsPort); err != nil {
			logger.Error("websocket server stopped", "error", err)
		}
	}()

	logger.Info("started", "service", serviceName)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")

	cancel()
	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("rest server shutdown error", "error", err)
	}
	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("websocket server shutdown error", "error", err)
	}

	logger.Info("stopped", "service", serviceName)
}

// applyEnvOverrides lets container environments override the server-level
// settings without editing the YAML file.
func applyEnvOverrides(raw *config.Raw) {
	raw.Server.RedisURL = getEnv("REDIS_URL", raw.Server.RedisURL)
	raw.Server.ESPNAPIBase = getEnv("ESPN_API_BASE", raw.Server.ESPNAPIBase)
	if league := os.Getenv("LIVESTATS_LEAGUE"); league != "" {
		raw.League = league
	}
	if preset := os.Getenv("LIVESTATS_TEAM_PRESET"); preset != "" {
		raw.TeamPreset = preset
	}
}

func portOrDefault(port, fallback string) string {
	if port != "" {
		return port
	}
	return fallback
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
