package service

import (
	"context"
	"fmt"

	infraES "holonet-go/internal/infra/elasticsearch"
	infraKafka "holonet-go/internal/infra/kafka"
	"holonet-go/internal/model"
	"holonet-go/internal/repository"
	"holonet-go/pkg/logger"

	"go.uber.org/zap"
)

// CatalogIndexer 目录索引写入
type CatalogIndexer interface {
	BulkIndex(ctx context.Context, docs []infraES.CatalogDoc) error
	ApplyFavoriteDelta(ctx context.Context, kind model.Kind, id int64, delta int) error
}

// IndexService 维护目录搜索索引
type IndexService struct {
	catalogRepo  *repository.CatalogRepository
	favoriteRepo *repository.FavoriteRepository
	indexer      CatalogIndexer
}

func NewIndexService(catalogRepo *repository.CatalogRepository, favoriteRepo *repository.FavoriteRepository, indexer CatalogIndexer) *IndexService {
	return &IndexService{catalogRepo: catalogRepo, favoriteRepo: favoriteRepo, indexer: indexer}
}

// BuildDocs 从数据库构造全部目录文档，收藏数按目标聚合
func (s *IndexService) BuildDocs(ctx context.Context) ([]infraES.CatalogDoc, error) {
	var docs []infraES.CatalogDoc
	for _, kind := range model.Kinds {
		items, err := s.catalogRepo.ListItems(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", kind, err)
		}
		counts, err := s.favoriteRepo.CountByKind(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("count %s favorites: %w", kind, err)
		}
		for _, it := range items {
			docs = append(docs, infraES.CatalogDoc{
				Kind:          kind.String(),
				ID:            it.ID,
				Name:          it.Name,
				FavoriteCount: counts[it.ID],
			})
		}
	}
	return docs, nil
}

// Reindex 全量重建索引
func (s *IndexService) Reindex(ctx context.Context) error {
	docs, err := s.BuildDocs(ctx)
	if err != nil {
		return err
	}
	if err := s.indexer.BulkIndex(ctx, docs); err != nil {
		return fmt.Errorf("bulk index: %w", err)
	}
	logger.Info("Catalog index rebuilt", zap.Int("docs", len(docs)))
	return nil
}

// HandleFavoriteEvent 按收藏事件增减文档收藏数
func (s *IndexService) HandleFavoriteEvent(ctx context.Context, evt *infraKafka.FavoriteEvent) error {
	kind, err := model.ParseKind(evt.Kind)
	if err != nil {
		return err
	}
	delta := evt.Delta()
	if delta == 0 {
		logger.Warn("Unknown favorite event type, skipped", zap.String("type", evt.Type))
		return nil
	}
	return s.indexer.ApplyFavoriteDelta(ctx, kind, evt.TargetID, delta)
}
