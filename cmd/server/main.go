package main

import (
	"fmt"
	"log"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"smartlink/internal/api"
	"smartlink/internal/api/handlers"
	"smartlink/internal/api/middleware"
	"smartlink/internal/engine/analytics"
	"smartlink/internal/engine/links"
	"smartlink/internal/engine/quota"
	"smartlink/internal/engine/redirect"
	"smartlink/internal/pkg/geoip"
	"smartlink/internal/pkg/logger"
	"smartlink/internal/platform/config"
	"smartlink/internal/platform/database"
	"smartlink/internal/platform/repositories"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Logging)

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Geolocation dataset: loaded once, read-only for the life of the
	// process. Missing dataset degrades clicks to null country, it is
	// not fatal.
	var geoResolver geoip.Resolver = geoip.NopResolver{}
	geoLoaded := false
	if cfg.GeoIP.DatabasePath != "" {
		mmdb, err := geoip.Open(cfg.GeoIP.DatabasePath)
		if err != nil {
			zlog.Warn().Err(err).Str("path", cfg.GeoIP.DatabasePath).Msg("geoip dataset unavailable, country enrichment disabled")
		} else {
			defer mmdb.Close()
			geoResolver = mmdb
			geoLoaded = true
		}
	}

	middleware.ConfigureRateLimits(cfg.RateLimit.RedirectPerMinute, cfg.RateLimit.APIReadPerMinute, cfg.RateLimit.APIWritePerMinute)

	// Repositories and services
	linkRepo := links.NewRepository(db)
	linkService := links.NewService(linkRepo)
	keyRepo := repositories.NewAPIKeyRepository(db)
	analyticsService := analytics.NewService(analytics.NewRepository(db))
	gate := quota.NewSQLGate(db)

	recorder := redirect.NewRecorder(db, gate, geoResolver, cfg.Recorder.QueueSize, cfg.Recorder.Workers)
	defer recorder.Stop()

	// Handlers
	redirectHandler := handlers.NewRedirectHandler(linkRepo, redirect.NewLinkCache(0), recorder, cfg.Server.RedirectTimeout)
	linkHandler := handlers.NewLinkHandler(linkService, cfg.Domains.ShortDomain)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, linkHandler)
	healthHandler := handlers.NewHealthHandler(db, geoLoaded)
	metricsHandler := handlers.NewMetricsHandler(recorder)

	deps := &api.Dependencies{
		RedirectHandler:  redirectHandler,
		LinkHandler:      linkHandler,
		AnalyticsHandler: analyticsHandler,
		HealthHandler:    healthHandler,
		MetricsHandler:   metricsHandler,
		APIKeyMiddleware: middleware.NewAPIKeyMiddleware(keyRepo),
	}
	router := api.NewRouter(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	zlog.Info().Str("addr", addr).Msg("server starting")
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
