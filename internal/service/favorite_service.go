package service

import (
	"context"
	"errors"
	"time"

	"holonet-go/internal/api/dto"
	infraKafka "holonet-go/internal/infra/kafka"
	"holonet-go/internal/metrics"
	"holonet-go/internal/model"
	"holonet-go/internal/repository"
	"holonet-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const publishTimeout = 5 * time.Second

// EventPublisher 收藏事件发布
type EventPublisher interface {
	PublishFavoriteEvent(ctx context.Context, evt *infraKafka.FavoriteEvent) error
}

type FavoriteService struct {
	favoriteRepo *repository.FavoriteRepository
	userRepo     *repository.UserRepository
	catalogRepo  *repository.CatalogRepository
	publisher    EventPublisher
}

// NewFavoriteService publisher 可以为 nil，此时不发送事件
func NewFavoriteService(
	favoriteRepo *repository.FavoriteRepository,
	userRepo *repository.UserRepository,
	catalogRepo *repository.CatalogRepository,
	publisher EventPublisher,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
		catalogRepo:  catalogRepo,
		publisher:    publisher,
	}
}

// Add 添加收藏，先校验用户再校验目标
func (s *FavoriteService) Add(ctx context.Context, userID int64, target model.Target) (*dto.FavoriteInfo, error) {
	if _, err := model.ParseKind(target.Kind.String()); err != nil {
		return nil, ErrInvalidKind
	}

	ok, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	ok, err = s.catalogRepo.Exists(ctx, target.Kind, target.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFoundFor(target.Kind)
	}

	exists, err := s.favoriteRepo.Exists(ctx, userID, target)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorited
	}

	fav, err := model.NewFavorite(userID, target)
	if err != nil {
		return nil, err
	}
	if err := s.favoriteRepo.Create(ctx, fav); err != nil {
		// 并发插入由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyFavorited
		}
		return nil, err
	}

	metrics.FavoritesAdded.WithLabelValues(target.Kind.String()).Inc()
	s.publish(ctx, infraKafka.EventFavoriteAdded, fav.ID, userID, target)

	return toFavoriteInfo(fav), nil
}

// Remove 取消收藏，只删除匹配到的第一条
func (s *FavoriteService) Remove(ctx context.Context, userID int64, target model.Target) error {
	if _, err := model.ParseKind(target.Kind.String()); err != nil {
		return ErrInvalidKind
	}

	fav, err := s.favoriteRepo.FindFirst(ctx, userID, target)
	if err != nil {
		return translateNotFound(err, ErrFavoriteNotFound)
	}

	deleted, err := s.favoriteRepo.DeleteByID(ctx, fav.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFavoriteNotFound
	}

	metrics.FavoritesRemoved.WithLabelValues(target.Kind.String()).Inc()
	s.publish(ctx, infraKafka.EventFavoriteRemoved, fav.ID, userID, target)

	return nil
}

// ListByUser 获取用户全部收藏
func (s *FavoriteService) ListByUser(ctx context.Context, userID int64) ([]dto.FavoriteInfo, error) {
	ok, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.FavoriteInfo, 0, len(favorites))
	for i := range favorites {
		items = append(items, *toFavoriteInfo(&favorites[i]))
	}
	return items, nil
}

// publish 数据已提交，事件发送失败只记录
func (s *FavoriteService) publish(ctx context.Context, eventType string, favoriteID, userID int64, target model.Target) {
	if s.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	evt := &infraKafka.FavoriteEvent{
		Type:       eventType,
		FavoriteID: favoriteID,
		UserID:     userID,
		Kind:       target.Kind.String(),
		TargetID:   target.ID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishFavoriteEvent(ctx, evt); err != nil {
		metrics.FavoriteEventsFailed.Inc()
		logger.Warn("Publish favorite event failed",
			zap.String("type", eventType),
			zap.Int64("favorite_id", favoriteID),
			zap.Error(err),
		)
	}
}

func toFavoriteInfo(f *model.Favorite) *dto.FavoriteInfo {
	return &dto.FavoriteInfo{
		ID:          f.ID,
		UserID:      f.UserID,
		PlanetID:    f.PlanetID,
		CharacterID: f.CharacterID,
		VehicleID:   f.VehicleID,
	}
}
