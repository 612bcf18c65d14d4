package repository

import (
	"context"

	"holonet-go/internal/model"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func targetColumn(kind model.Kind) (string, error) {
	if _, err := model.ParseKind(kind.String()); err != nil {
		return "", err
	}
	return kind.Column(), nil
}

func (r *FavoriteRepository) Create(ctx context.Context, fav *model.Favorite) error {
	return r.db.WithContext(ctx).Omit("User", "Planet", "Character", "Vehicle").Create(fav).Error
}

// FindFirst 查找用户对某目标的第一条收藏（按 ID 升序），只按用户和目标列过滤
func (r *FavoriteRepository) FindFirst(ctx context.Context, userID int64, target model.Target) (*model.Favorite, error) {
	col, err := targetColumn(target.Kind)
	if err != nil {
		return nil, err
	}
	var fav model.Favorite
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND "+col+" = ?", userID, target.ID).
		Order("id ASC").First(&fav).Error
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID int64, target model.Target) (bool, error) {
	col, err := targetColumn(target.Kind)
	if err != nil {
		return false, err
	}
	var count int64
	err = r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND "+col+" = ?", userID, target.ID).Count(&count).Error
	return count > 0, err
}

// DeleteByID 删除单条收藏
func (r *FavoriteRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Favorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListByUser 获取用户的全部收藏，按插入顺序
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	var favorites []model.Favorite
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// CountByKind 统计某类型每个目标的收藏数
func (r *FavoriteRepository) CountByKind(ctx context.Context, kind model.Kind) (map[int64]int64, error) {
	col, err := targetColumn(kind)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		TargetID int64
		Total    int64
	}
	err = r.db.WithContext(ctx).Model(&model.Favorite{}).
		Select(col + " AS target_id, COUNT(*) AS total").
		Where(col + " IS NOT NULL").
		Group(col).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(rows))
	for _, row := range rows {
		counts[row.TargetID] = row.Total
	}
	return counts, nil
}
