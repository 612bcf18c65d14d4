package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"holonet-go/internal/config"
	"holonet-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	EventFavoriteAdded   = "favorite.added"
	EventFavoriteRemoved = "favorite.removed"
)

// FavoriteEvent 收藏变更消息体
type FavoriteEvent struct {
	Type       string    `json:"type"`
	FavoriteID int64     `json:"favorite_id"`
	UserID     int64     `json:"user_id"`
	Kind       string    `json:"kind"`
	TargetID   int64     `json:"target_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Key 同一目标的消息落在同一分区，保证计数顺序
func (e *FavoriteEvent) Key() string {
	return fmt.Sprintf("%s-%d", e.Kind, e.TargetID)
}

// Delta 事件对收藏数的影响
func (e *FavoriteEvent) Delta() int {
	switch e.Type {
	case EventFavoriteAdded:
		return 1
	case EventFavoriteRemoved:
		return -1
	}
	return 0
}

// Producer 收藏事件生产者
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer 初始化 Kafka 生产者
func NewProducer(cfg *config.KafkaConfig) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	topic := cfg.Topic("favorite_events")
	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", topic),
	)

	return &Producer{writer: writer, topic: topic}
}

// PublishFavoriteEvent 发送收藏事件
func (p *Producer) PublishFavoriteEvent(ctx context.Context, evt *FavoriteEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal favorite event: %w", err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(evt.Key()),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send favorite event: %w", err)
	}

	logger.Debug("Favorite event sent",
		zap.String("type", evt.Type),
		zap.Int64("favorite_id", evt.FavoriteID),
		zap.String("topic", p.topic),
	)
	return nil
}

// Close 关闭生产者
func (p *Producer) Close() error {
	logger.Info("Kafka producer closed")
	return p.writer.Close()
}
