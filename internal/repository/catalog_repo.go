package repository

import (
	"context"
	"strings"

	"holonet-go/internal/model"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func findAll[T any](db *gorm.DB) ([]T, error) {
	var rows []T
	if err := db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func findByID[T any](db *gorm.DB, id int64) (*T, error) {
	var row T
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// tableOf 类型名即表名
func tableOf(kind model.Kind) (string, error) {
	if _, err := model.ParseKind(kind.String()); err != nil {
		return "", err
	}
	return kind.String(), nil
}

func (r *CatalogRepository) ListCharacters(ctx context.Context) ([]model.Character, error) {
	return findAll[model.Character](r.db.WithContext(ctx))
}

func (r *CatalogRepository) GetCharacter(ctx context.Context, id int64) (*model.Character, error) {
	return findByID[model.Character](r.db.WithContext(ctx), id)
}

func (r *CatalogRepository) ListPlanets(ctx context.Context) ([]model.Planet, error) {
	return findAll[model.Planet](r.db.WithContext(ctx))
}

func (r *CatalogRepository) GetPlanet(ctx context.Context, id int64) (*model.Planet, error) {
	return findByID[model.Planet](r.db.WithContext(ctx), id)
}

func (r *CatalogRepository) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	return findAll[model.Vehicle](r.db.WithContext(ctx))
}

func (r *CatalogRepository) GetVehicle(ctx context.Context, id int64) (*model.Vehicle, error) {
	return findByID[model.Vehicle](r.db.WithContext(ctx), id)
}

// Exists 检查指定类型的目录实体是否存在
func (r *CatalogRepository) Exists(ctx context.Context, kind model.Kind, id int64) (bool, error) {
	table, err := tableOf(kind)
	if err != nil {
		return false, err
	}
	var count int64
	err = r.db.WithContext(ctx).Table(table).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListItems 返回某类型全部条目的摘要（索引重建用）
func (r *CatalogRepository) ListItems(ctx context.Context, kind model.Kind) ([]model.CatalogItem, error) {
	table, err := tableOf(kind)
	if err != nil {
		return nil, err
	}
	var rows []itemRow
	err = r.db.WithContext(ctx).Table(table).Select("id, name").Order("id ASC").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toItems(kind, rows), nil
}

// SearchByName 按名称模糊搜索，大小写不敏感
func (r *CatalogRepository) SearchByName(ctx context.Context, kind model.Kind, keyword string, limit int) ([]model.CatalogItem, error) {
	table, err := tableOf(kind)
	if err != nil {
		return nil, err
	}
	var rows []itemRow
	pattern := "%" + strings.ToLower(keyword) + "%"
	err = r.db.WithContext(ctx).Table(table).Select("id, name").
		Where("LOWER(name) LIKE ?", pattern).
		Order("id ASC").Limit(limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toItems(kind, rows), nil
}

type itemRow struct {
	ID   int64
	Name string
}

func toItems(kind model.Kind, rows []itemRow) []model.CatalogItem {
	items := make([]model.CatalogItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.CatalogItem{Kind: kind, ID: row.ID, Name: row.Name})
	}
	return items
}
