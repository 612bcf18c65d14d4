package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"holonet-go/internal/api/handler"
	"holonet-go/internal/api/router"
	"holonet-go/internal/config"
	"holonet-go/internal/infra/database"
	infraES "holonet-go/internal/infra/elasticsearch"
	infraKafka "holonet-go/internal/infra/kafka"
	infraRedis "holonet-go/internal/infra/redis"
	"holonet-go/internal/repository"
	"holonet-go/internal/service"
	"holonet-go/pkg/logger"

	_ "holonet-go/api/openapi"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title Holonet-Go API
// @version 1.0
// @description 星球大战目录与收藏 API 服务

// @BasePath /

func main() {
	// .env 不存在时忽略
	_ = godotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	db, err := database.Open(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 可选组件，未启用或连接失败时降级
	var cache service.CatalogCache
	if cfg.Redis.Enabled {
		client, err := infraRedis.New(&cfg.Redis)
		if err != nil {
			logger.Warn("Redis init failed, catalog cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			cache = infraRedis.NewCatalogCache(client, cfg.Redis.TTL())
		}
	}

	var publisher service.EventPublisher
	if cfg.Kafka.Enabled {
		producer := infraKafka.NewProducer(&cfg.Kafka)
		defer producer.Close()
		publisher = producer
	}

	var index service.CatalogIndex
	if cfg.Elasticsearch.Enabled {
		esClient, err := infraES.New(&cfg.Elasticsearch)
		if err != nil {
			logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
		} else {
			defer esClient.Close()
			index = esClient
		}
	}

	// 初始化依赖（Repository -> Service -> Handler）
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(catalogRepo, cache)
	favoriteService := service.NewFavoriteService(favoriteRepo, userRepo, catalogRepo, publisher)
	searchService := service.NewSearchService(catalogRepo, favoriteRepo, index)

	gin.SetMode(cfg.App.Mode)
	r := router.New(cfg, &router.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogService),
		Favorite: handler.NewFavoriteHandler(favoriteService),
		User:     handler.NewUserHandler(userService),
		Search:   handler.NewSearchHandler(searchService),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
		zap.String("database", cfg.Database.Driver()),
		zap.Bool("redis", cache != nil),
		zap.Bool("kafka", publisher != nil),
		zap.Bool("elasticsearch", index != nil),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}
