package service

import (
	"context"
	"fmt"

	"holonet-go/internal/api/dto"
	"holonet-go/internal/model"
	"holonet-go/internal/repository"
	"holonet-go/pkg/logger"

	"go.uber.org/zap"
)

// CatalogCache 目录读缓存，值以 JSON 形式存取
type CatalogCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

type CatalogService struct {
	catalogRepo *repository.CatalogRepository
	cache       CatalogCache
}

// NewCatalogService cache 可以为 nil，此时直接读库
func NewCatalogService(catalogRepo *repository.CatalogRepository, cache CatalogCache) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo, cache: cache}
}

func listKey(kind model.Kind) string {
	return fmt.Sprintf("catalog:%s:all", kind)
}

func itemKey(kind model.Kind, id int64) string {
	return fmt.Sprintf("catalog:%s:%d", kind, id)
}

// cached 读穿缓存，缓存故障只记录日志
func cached[T any](ctx context.Context, cache CatalogCache, key string, load func() (T, error)) (T, error) {
	if cache != nil {
		var v T
		hit, err := cache.Get(ctx, key, &v)
		if err != nil {
			logger.Warn("Catalog cache get failed", zap.String("key", key), zap.Error(err))
		} else if hit {
			return v, nil
		}
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	if cache != nil {
		if err := cache.Set(ctx, key, v); err != nil {
			logger.Warn("Catalog cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
	return v, nil
}

// ListCharacters 获取全部角色
func (s *CatalogService) ListCharacters(ctx context.Context) ([]dto.CharacterInfo, error) {
	return cached(ctx, s.cache, listKey(model.KindCharacter), func() ([]dto.CharacterInfo, error) {
		rows, err := s.catalogRepo.ListCharacters(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]dto.CharacterInfo, 0, len(rows))
		for i := range rows {
			items = append(items, toCharacterInfo(&rows[i]))
		}
		return items, nil
	})
}

// GetCharacter 获取单个角色
func (s *CatalogService) GetCharacter(ctx context.Context, id int64) (*dto.CharacterInfo, error) {
	return cached(ctx, s.cache, itemKey(model.KindCharacter, id), func() (*dto.CharacterInfo, error) {
		c, err := s.catalogRepo.GetCharacter(ctx, id)
		if err != nil {
			return nil, translateNotFound(err, ErrCharacterNotFound)
		}
		info := toCharacterInfo(c)
		return &info, nil
	})
}

// ListPlanets 获取全部星球
func (s *CatalogService) ListPlanets(ctx context.Context) ([]dto.PlanetInfo, error) {
	return cached(ctx, s.cache, listKey(model.KindPlanet), func() ([]dto.PlanetInfo, error) {
		rows, err := s.catalogRepo.ListPlanets(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]dto.PlanetInfo, 0, len(rows))
		for i := range rows {
			items = append(items, toPlanetInfo(&rows[i]))
		}
		return items, nil
	})
}

// GetPlanet 获取单个星球
func (s *CatalogService) GetPlanet(ctx context.Context, id int64) (*dto.PlanetInfo, error) {
	return cached(ctx, s.cache, itemKey(model.KindPlanet, id), func() (*dto.PlanetInfo, error) {
		p, err := s.catalogRepo.GetPlanet(ctx, id)
		if err != nil {
			return nil, translateNotFound(err, ErrPlanetNotFound)
		}
		info := toPlanetInfo(p)
		return &info, nil
	})
}

// ListVehicles 获取全部载具
func (s *CatalogService) ListVehicles(ctx context.Context) ([]dto.VehicleInfo, error) {
	return cached(ctx, s.cache, listKey(model.KindVehicle), func() ([]dto.VehicleInfo, error) {
		rows, err := s.catalogRepo.ListVehicles(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]dto.VehicleInfo, 0, len(rows))
		for i := range rows {
			items = append(items, toVehicleInfo(&rows[i]))
		}
		return items, nil
	})
}

// GetVehicle 获取单个载具
func (s *CatalogService) GetVehicle(ctx context.Context, id int64) (*dto.VehicleInfo, error) {
	return cached(ctx, s.cache, itemKey(model.KindVehicle, id), func() (*dto.VehicleInfo, error) {
		v, err := s.catalogRepo.GetVehicle(ctx, id)
		if err != nil {
			return nil, translateNotFound(err, ErrVehicleNotFound)
		}
		info := toVehicleInfo(v)
		return &info, nil
	})
}

func toCharacterInfo(c *model.Character) dto.CharacterInfo {
	return dto.CharacterInfo{ID: c.ID, Name: c.Name, BirthYear: c.BirthYear, Gender: c.Gender}
}

func toPlanetInfo(p *model.Planet) dto.PlanetInfo {
	return dto.PlanetInfo{ID: p.ID, Name: p.Name, Climate: p.Climate, Terrain: p.Terrain}
}

func toVehicleInfo(v *model.Vehicle) dto.VehicleInfo {
	return dto.VehicleInfo{ID: v.ID, Name: v.Name, Model: v.Model, Price: v.Price}
}
