package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"holonet-go/internal/config"
	"holonet-go/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Storage MinIO 对象存储封装
type Storage struct {
	client *minio.Client
}

// New 初始化 MinIO 客户端
func New(cfg *config.MinIOConfig) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	logger.Info("MinIO client created", zap.String("endpoint", cfg.Endpoint))
	return &Storage{client: client}, nil
}

// EnsureBucket bucket 不存在时创建
func (s *Storage) EnsureBucket(ctx context.Context, bucket string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	logger.Info("MinIO bucket created", zap.String("bucket", bucket))
	return nil
}

// ReadObject 读取整个对象
func (s *Storage) ReadObject(ctx context.Context, bucket, objectName string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", bucket, objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", bucket, objectName, err)
	}
	return data, nil
}

// UploadFile 上传数据到指定 Bucket
func (s *Storage) UploadFile(ctx context.Context, bucket, objectName string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload to minio: %w", err)
	}
	logger.Info("Object uploaded",
		zap.String("bucket", bucket),
		zap.String("object", objectName),
		zap.Int("size", len(data)),
	)
	return nil
}
