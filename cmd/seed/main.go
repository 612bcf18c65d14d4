package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"holonet-go/internal/config"
	"holonet-go/internal/infra/database"
	infraMinio "holonet-go/internal/infra/minio"
	"holonet-go/internal/seed"
	"holonet-go/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "config file path")
	export := flag.Bool("export", false, "upload the built-in dataset to MinIO and exit")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if *export {
		if err := exportDataset(ctx, cfg); err != nil {
			logger.Fatal("Failed to export dataset", zap.Error(err))
		}
		return
	}

	ds, err := loadDataset(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.String("source", cfg.Seed.Source), zap.Error(err))
	}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	if _, err := seed.Populate(ctx, db, ds); err != nil {
		logger.Fatal("Failed to populate database", zap.Error(err))
	}
}

func loadDataset(ctx context.Context, cfg *config.Config) (*seed.Dataset, error) {
	if cfg.Seed.Source != "minio" {
		return seed.DefaultDataset(), nil
	}

	storage, err := infraMinio.New(&cfg.MinIO)
	if err != nil {
		return nil, err
	}
	data, err := storage.ReadObject(ctx, cfg.Seed.Bucket, cfg.Seed.Object)
	if err != nil {
		return nil, err
	}
	logger.Info("Dataset loaded from MinIO",
		zap.String("bucket", cfg.Seed.Bucket),
		zap.String("object", cfg.Seed.Object),
	)
	return seed.Parse(data)
}

func exportDataset(ctx context.Context, cfg *config.Config) error {
	storage, err := infraMinio.New(&cfg.MinIO)
	if err != nil {
		return err
	}
	if err := storage.EnsureBucket(ctx, cfg.Seed.Bucket); err != nil {
		return err
	}
	data, err := json.MarshalIndent(seed.DefaultDataset(), "", "  ")
	if err != nil {
		return err
	}
	return storage.UploadFile(ctx, cfg.Seed.Bucket, cfg.Seed.Object, data, "application/json")
}
