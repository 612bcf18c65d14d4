package kafka

import (
	"context"
	"encoding/json"
	"time"

	"holonet-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventHandler 处理收藏事件的回调函数
type EventHandler func(ctx context.Context, evt *FavoriteEvent) error

// StartFavoriteEventConsumer 启动收藏事件消费者（阻塞，需在 goroutine 中运行）
// ctx 取消后会自动停止
func StartFavoriteEventConsumer(ctx context.Context, brokers []string, topic, groupID string, handler EventHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka favorite event consumer stopped")
	}()

	logger.Info("Kafka favorite event consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var evt FavoriteEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			logger.Error("Failed to unmarshal favorite event",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		if err := handler(ctx, &evt); err != nil {
			logger.Error("Failed to handle favorite event",
				zap.String("type", evt.Type),
				zap.Int64("favorite_id", evt.FavoriteID),
				zap.Error(err),
			)
		}
	}
}
