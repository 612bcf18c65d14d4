package service

import (
	"context"
	"strings"

	"holonet-go/internal/api/dto"
	infraES "holonet-go/internal/infra/elasticsearch"
	"holonet-go/internal/model"
	"holonet-go/internal/repository"
	"holonet-go/pkg/logger"

	"go.uber.org/zap"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100

	SourceElasticsearch = "elasticsearch"
	SourceDatabase      = "database"
)

// CatalogIndex 目录搜索索引
type CatalogIndex interface {
	SearchCatalog(ctx context.Context, keyword string, kind model.Kind, limit int) ([]infraES.CatalogDoc, error)
}

type SearchService struct {
	catalogRepo  *repository.CatalogRepository
	favoriteRepo *repository.FavoriteRepository
	index        CatalogIndex
}

// NewSearchService index 可以为 nil，此时只查数据库
func NewSearchService(catalogRepo *repository.CatalogRepository, favoriteRepo *repository.FavoriteRepository, index CatalogIndex) *SearchService {
	return &SearchService{catalogRepo: catalogRepo, favoriteRepo: favoriteRepo, index: index}
}

// Search 搜索目录（ES 优先，失败则降级到 DB）
func (s *SearchService) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchData, error) {
	keyword := strings.TrimSpace(req.Q)

	var kind model.Kind
	if req.Kind != "" {
		k, err := model.ParseKind(req.Kind)
		if err != nil {
			return nil, ErrInvalidKind
		}
		kind = k
	}

	limit := req.Limit
	if limit < 1 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	if s.index != nil {
		data, err := s.searchFromES(ctx, keyword, kind, limit)
		if err == nil {
			return data, nil
		}
		logger.Warn("ES search failed, fallback to DB", zap.Error(err))
	}
	return s.searchFromDB(ctx, keyword, kind, limit)
}

func (s *SearchService) searchFromES(ctx context.Context, keyword string, kind model.Kind, limit int) (*dto.SearchData, error) {
	docs, err := s.index.SearchCatalog(ctx, keyword, kind, limit)
	if err != nil {
		return nil, err
	}

	hits := make([]dto.SearchHit, 0, len(docs))
	for _, d := range docs {
		hits = append(hits, dto.SearchHit{Kind: d.Kind, ID: d.ID, Name: d.Name, FavoriteCount: d.FavoriteCount})
	}
	return &dto.SearchData{Hits: hits, Source: SourceElasticsearch}, nil
}

// searchFromDB 按类型顺序依次查询，总数不超过 limit
func (s *SearchService) searchFromDB(ctx context.Context, keyword string, kind model.Kind, limit int) (*dto.SearchData, error) {
	kinds := model.Kinds
	if kind != "" {
		kinds = []model.Kind{kind}
	}

	hits := make([]dto.SearchHit, 0)
	for _, k := range kinds {
		remaining := limit - len(hits)
		if remaining <= 0 {
			break
		}

		items, err := s.catalogRepo.SearchByName(ctx, k, keyword, remaining)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			continue
		}

		counts, err := s.favoriteRepo.CountByKind(ctx, k)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			hits = append(hits, dto.SearchHit{
				Kind:          it.Kind.String(),
				ID:            it.ID,
				Name:          it.Name,
				FavoriteCount: counts[it.ID],
			})
		}
	}

	return &dto.SearchData{Hits: hits, Source: SourceDatabase}, nil
}
