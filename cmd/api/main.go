package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/yurtswap/yurtswap-api/api/swagger"
	"github.com/yurtswap/yurtswap-api/internal/handler"
	"github.com/yurtswap/yurtswap-api/internal/middleware"
	"github.com/yurtswap/yurtswap-api/internal/repository"
	"github.com/yurtswap/yurtswap-api/internal/service"
	"github.com/yurtswap/yurtswap-api/pkg/cache"
	"github.com/yurtswap/yurtswap-api/pkg/config"
	"github.com/yurtswap/yurtswap-api/pkg/database"
	"github.com/yurtswap/yurtswap-api/pkg/logger"
	corsmiddleware "github.com/yurtswap/yurtswap-api/pkg/middleware/cors"
	reqidmiddleware "github.com/yurtswap/yurtswap-api/pkg/middleware/requestid"
)

// @title YurtSwap API
// @version 1.0.0
// @description Dorm swap listings and roommate matching service
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		redisClient = nil
	}

	metricsSvc := service.NewMetricsService()
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Stats.CacheTTL, logr, cfg.Stats.CacheEnabled)
	tokenSvc := service.NewTokenService(cfg.OwnerToken)

	listingRepo := repository.NewListingRepository(db)
	roommateRepo := repository.NewRoommateRepository(db)
	residentRepo := repository.NewResidentRepository(db)

	listingSvc := service.NewListingService(listingRepo, cacheSvc, metricsSvc, tokenSvc, nil, logr, service.ListingServiceConfig{
		MatchesTTL: cfg.Matches.CacheTTL,
	})
	roommateSvc := service.NewRoommateService(roommateRepo, cacheSvc, metricsSvc, tokenSvc, nil, logr)
	residentSvc := service.NewResidentService(residentRepo, nil, logr)
	statsSvc := service.NewStatsService(listingRepo, roommateRepo, cacheSvc, metricsSvc, logr, service.StatsServiceConfig{
		StatsTTL:   cfg.Stats.CacheTTL,
		MatchesTTL: cfg.Matches.CacheTTL,
	})
	exportSvc := service.NewExportService(statsSvc, nil, nil, logr)

	listingHandler := handler.NewListingHandler(listingSvc)
	roommateHandler := handler.NewRoommateHandler(roommateSvc)
	residentHandler := handler.NewResidentHandler(residentSvc)
	statsHandler := handler.NewStatsHandler(statsSvc, exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, db, redisClient)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		listings := api.Group("/listings")
		{
			listings.GET("", listingHandler.List)
			listings.POST("", listingHandler.Create)
			listings.GET("/:id", listingHandler.Get)
			listings.GET("/:id/matches", listingHandler.Matches)
			listings.PUT("/:id", middleware.OwnerToken(), listingHandler.Update)
			listings.DELETE("/:id", middleware.OwnerToken(), listingHandler.Delete)
		}

		searches := api.Group("/roommate-searches")
		{
			searches.GET("", roommateHandler.List)
			searches.POST("", roommateHandler.Create)
			searches.GET("/:id", roommateHandler.Get)
			searches.PUT("/:id", middleware.OwnerToken(), roommateHandler.Update)
			searches.DELETE("/:id", middleware.OwnerToken(), roommateHandler.Delete)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/rooms", statsHandler.Rooms)
			stats.GET("/rooms/export", statsHandler.ExportRooms)
			stats.GET("/roommates", statsHandler.Roommates)
			stats.GET("/roommates/export", statsHandler.ExportRoommates)
			stats.GET("/swap-matches", statsHandler.SwapMatches)
			stats.GET("/roommate-matches", statsHandler.RoommateMatches)
			stats.GET("/system", metricsHandler.System)
		}

		residents := api.Group("/residents")
		{
			residents.GET("/:id", residentHandler.Get)
			residents.PUT("/:id", residentHandler.Upsert)
			residents.POST("/:id/activity", residentHandler.TouchActivity)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
