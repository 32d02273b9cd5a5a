package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/JonathanI21/Courses-solidaires-2/api/routes"
	"github.com/JonathanI21/Courses-solidaires-2/internal/catalog"
	"github.com/JonathanI21/Courses-solidaires-2/internal/pricing"
	"github.com/JonathanI21/Courses-solidaires-2/internal/scanner"
	"github.com/JonathanI21/Courses-solidaires-2/internal/shoppinglist"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/config"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/db"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/logger"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/metrics"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/migrate"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}
	if err := migrate.MaybeSeedDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to seed reference data", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	catalogService, err := catalog.NewService(catalog.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	pricingService, err := pricing.NewService(catalogService)
	if err != nil {
		logg.Error(context.Background(), "failed to create pricing service", err)
		os.Exit(1)
	}

	listRepo, err := shoppinglist.NewRedisRepository(redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create list repository", err)
		os.Exit(1)
	}
	listService, err := shoppinglist.NewService(listRepo, catalogService, pricingService)
	if err != nil {
		logg.Error(context.Background(), "failed to create list service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)
	scannerMetrics := metrics.NewScannerMetrics(registry)

	scannerService, err := scanner.NewService(catalogService, pricingService, listService, scannerMetrics, cfg.Scanner)
	if err != nil {
		logg.Error(context.Background(), "failed to create scanner service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:      cfg,
			Logger:      logg,
			Catalog:     catalogService,
			Pricing:     pricingService,
			Lists:       listService,
			Scanner:     scannerService,
			HTTPMetrics: httpMetrics,
			Gatherer:    registry,
			Probes: map[string]func() error{
				"database": func() error { return dbClient.Ping(context.Background()) },
				"redis":    func() error { return redisClient.Ping(context.Background()) },
			},
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
