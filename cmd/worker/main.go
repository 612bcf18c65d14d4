package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"holonet-go/internal/config"
	"holonet-go/internal/infra/database"
	infraES "holonet-go/internal/infra/elasticsearch"
	infraKafka "holonet-go/internal/infra/kafka"
	"holonet-go/internal/repository"
	"holonet-go/internal/service"
	"holonet-go/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const reindexTimeout = 5 * time.Minute

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
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

	esClient, err := infraES.New(&cfg.Elasticsearch)
	if err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer esClient.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := esClient.EnsureCatalogIndex(ctx); err != nil {
		logger.Fatal("Failed to init catalog index", zap.Error(err))
	}

	indexService := service.NewIndexService(
		repository.NewCatalogRepository(db),
		repository.NewFavoriteRepository(db),
		esClient,
	)

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	reindex := func() {
		rctx, rcancel := context.WithTimeout(ctx, reindexTimeout)
		defer rcancel()
		if err := indexService.Reindex(rctx); err != nil {
			logger.Error("Catalog reindex failed", zap.Error(err))
		}
	}

	// 启动时先全量重建一次
	reindex()

	c := cron.New()
	if _, err := c.AddFunc(cfg.Worker.ReindexSpec, reindex); err != nil {
		logger.Fatal("Invalid reindex schedule",
			zap.String("spec", cfg.Worker.ReindexSpec),
			zap.Error(err),
		)
	}
	c.Start()
	logger.Info("Reindex scheduler started", zap.String("spec", cfg.Worker.ReindexSpec))

	done := make(chan struct{})
	if cfg.Kafka.Enabled {
		go func() {
			defer close(done)
			infraKafka.StartFavoriteEventConsumer(
				ctx,
				cfg.Kafka.Brokers,
				cfg.Kafka.Topic("favorite_events"),
				cfg.Kafka.GroupID,
				indexService.HandleFavoriteEvent,
			)
		}()
	} else {
		logger.Warn("Kafka disabled, favorite counts only refresh on reindex")
		close(done)
	}

	<-ctx.Done()
	<-c.Stop().Done()
	<-done
	logger.Info("Index worker stopped")
}
