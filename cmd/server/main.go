package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "varmepumpe/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"varmepumpe/internal/auth"
	"varmepumpe/internal/cache"
	"varmepumpe/internal/config"
	"varmepumpe/internal/db"
	"varmepumpe/internal/geocode"
	"varmepumpe/internal/handler"
	"varmepumpe/internal/metrics"
	"varmepumpe/internal/repository"
	"varmepumpe/internal/router"
	"varmepumpe/internal/service"
	"varmepumpe/internal/storage"
)

// @title Varmepumpe Service API
// @version 1.0
// @description Lead marketplace connecting heat pump owners in Norway with certified service installers.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name sessionId
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Env, cfg.LogLevel)
	slog.SetDefault(logger)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		logger.Error("database init", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Error("migrate", "error", err)
		os.Exit(1)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	var sessionStore auth.SessionStore
	switch cfg.SessionStore {
	case "memory":
		logger.Warn("using in-memory session store; sessions are lost on restart")
		sessionStore = auth.NewMemorySessionStore()
	default:
		sessionStore = auth.NewRedisSessionStore(cacheClient.Redis())
	}

	var archiver storage.Archiver
	if cfg.S3Bucket != "" {
		s3Archiver, err := storage.NewS3Archiver(context.Background(), storage.S3Config{
			Region:          cfg.AWSRegion,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			PresignTTL:      cfg.S3PresignTTL,
		})
		if err != nil {
			logger.Error("s3 archiver init", "error", err)
			os.Exit(1)
		}
		archiver = s3Archiver
	} else {
		logger.Info("AWS_S3_BUCKET not set, postal code archiving disabled")
	}

	collector := metrics.NewCollector()
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collector,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Repositories
	store := repository.NewStore(gormDB)

	// Auth components
	sessions := auth.NewSessionService(cfg.SessionSecret, cfg.SessionTTL)
	hasher := auth.NewHasher(cfg.BcryptCost)

	// Services
	authService := service.NewAuthService(
		store,
		hasher,
		sessions,
		sessionStore,
		service.NewLogResetSender(logger),
		service.AuthOptions{
			AutoApproveInstallers: cfg.AutoApproveInstallers,
			ResetTokenTTL:         cfg.ResetTokenTTL,
		},
		collector,
		logger,
	)
	userService := service.NewUserService(store.Users(), cacheClient)
	installerService := service.NewInstallerService(store, logger)
	matchingService := service.NewMatchingService(store.Installers())
	requestService := service.NewRequestService(store, collector, logger)
	areaService := service.NewServiceAreaService(store)
	customerService := service.NewCustomerService(store, logger)
	postalCodeService := service.NewPostalCodeService(store.PostalCodes(), archiver, logger)
	statsService := service.NewStatsService(store)
	geocoder := geocode.New(geocode.Config{
		KartverketURL: cfg.KartverketURL,
		NominatimURL:  cfg.NominatimURL,
		Timeout:       cfg.GeocodeTimeout,
		CacheTTL:      cfg.GeocodeTTL,
	}, cacheClient, collector, logger)

	if n, err := postalCodeService.EnsureSeeded(context.Background()); err != nil {
		logger.Warn("seed postal codes", "error", err)
	} else if n > 0 {
		logger.Info("seeded postal codes", "count", n)
	}

	// Handlers
	handlers := router.Handlers{
		Auth:            handler.NewAuthHandler(authService, cfg.CookieSecure, cfg.SessionTTL),
		Users:           handler.NewUserHandler(userService, authService, statsService),
		ServiceRequests: handler.NewServiceRequestHandler(requestService, installerService),
		Installers:      handler.NewInstallerHandler(installerService, matchingService, authService),
		ServiceAreas:    handler.NewServiceAreaHandler(areaService, installerService),
		Customers:       handler.NewCustomerHandler(customerService),
		PostalCodes:     handler.NewPostalCodeHandler(postalCodeService),
		Seed:            handler.NewSeedHandler(postalCodeService),
		Locations:       handler.NewLocationHandler(geocoder),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, handlers, router.Deps{
		Sessions: auth.NewMiddleware(sessions, sessionStore, logger),
		Metrics:  collector,
		Gatherer: registry,
		Logger:   logger,
	})

	logger.Info("swagger documentation available", "url", swaggerURL(cfg))

	go func() {
		addr := ":" + cfg.ServerPort
		logger.Info("server starting", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	logger.Info("server stopped")
}

func setupLogger(env, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if env == "development" || env == "local" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
