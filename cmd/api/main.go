package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bloomandblossom/florist-backend/api/routes"
	"github.com/bloomandblossom/florist-backend/internal/auth"
	"github.com/bloomandblossom/florist-backend/internal/catalog"
	"github.com/bloomandblossom/florist-backend/internal/dashboard"
	"github.com/bloomandblossom/florist-backend/internal/orders"
	"github.com/bloomandblossom/florist-backend/internal/storeprofile"
	"github.com/bloomandblossom/florist-backend/internal/translation"
	"github.com/bloomandblossom/florist-backend/pkg/config"
	"github.com/bloomandblossom/florist-backend/pkg/db"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
	"github.com/bloomandblossom/florist-backend/pkg/metrics"
	"github.com/bloomandblossom/florist-backend/pkg/migrate"
	"github.com/bloomandblossom/florist-backend/pkg/redis"
	"github.com/bloomandblossom/florist-backend/pkg/storage/local"
	"github.com/bloomandblossom/florist-backend/pkg/translate"
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

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	translator, err := translate.New(context.Background(), cfg.Translate, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create translation client", err)
		os.Exit(1)
	}

	uploads, err := local.New(context.Background(), cfg.Uploads, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to prepare upload storage", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	translationMetrics := metrics.NewTranslationMetrics(registry)
	orderMetrics := metrics.NewOrderMetrics(registry)

	pipeline, err := translation.NewPipeline(translator, translationMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create translation pipeline", err)
		os.Exit(1)
	}

	catalogRepo := catalog.NewRepository(dbClient.DB())
	catalogService, err := catalog.NewService(catalogRepo, dbClient, pipeline, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(orders.NewRepository(dbClient.DB()), dbClient, catalogRepo, orderMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.NewRepository(dbClient.DB()), cfg.JWT, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	storeService, err := storeprofile.NewService(storeprofile.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create store profile service", err)
		os.Exit(1)
	}

	dashboardService, err := dashboard.NewService(dbClient.DB())
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
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
			DB:          dbClient,
			Redis:       redisClient,
			Registry:    registry,
			AuthService: authService,
			Catalog:     catalogService,
			Orders:      orderService,
			Store:       storeService,
			Dashboard:   dashboardService,
			Uploads:     uploads,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
