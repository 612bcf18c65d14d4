package model

import (
	"errors"
	"time"
)

var ErrInvalidFavoriteTarget = errors.New("favorite must reference exactly one catalog entity")

// Favorite 收藏记录
// 三个可空外键中有且只有一个非空，只能通过 NewFavorite 构造
type Favorite struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:收藏记录ID" json:"id"`
	UserID      int64     `gorm:"not null;index:idx_favorite_user_id;uniqueIndex:uq_favorite_user_planet;uniqueIndex:uq_favorite_user_character;uniqueIndex:uq_favorite_user_vehicle;comment:收藏用户ID" json:"user_id"`
	PlanetID    *int64    `gorm:"uniqueIndex:uq_favorite_user_planet;check:chk_favorite_single_target,(CASE WHEN planet_id IS NULL THEN 0 ELSE 1 END) + (CASE WHEN character_id IS NULL THEN 0 ELSE 1 END) + (CASE WHEN vehicle_id IS NULL THEN 0 ELSE 1 END) = 1;comment:星球ID" json:"planet_id"`
	CharacterID *int64    `gorm:"uniqueIndex:uq_favorite_user_character;comment:角色ID" json:"character_id"`
	VehicleID   *int64    `gorm:"uniqueIndex:uq_favorite_user_vehicle;comment:载具ID" json:"vehicle_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime;comment:收藏时间" json:"-"`

	// 关联关系
	User      *User      `gorm:"foreignKey:UserID" json:"-"`
	Planet    *Planet    `gorm:"foreignKey:PlanetID" json:"-"`
	Character *Character `gorm:"foreignKey:CharacterID" json:"-"`
	Vehicle   *Vehicle   `gorm:"foreignKey:VehicleID" json:"-"`
}

func (Favorite) TableName() string {
	return "favorite"
}

// NewFavorite 根据目标类型只填充对应的外键列
func NewFavorite(userID int64, target Target) (*Favorite, error) {
	id := target.ID
	fav := &Favorite{UserID: userID}
	switch target.Kind {
	case KindPlanet:
		fav.PlanetID = &id
	case KindCharacter:
		fav.CharacterID = &id
	case KindVehicle:
		fav.VehicleID = &id
	default:
		return nil, ErrUnknownKind
	}
	return fav, nil
}

// Target 还原收藏目标，行数据不满足单一目标时返回错误
func (f *Favorite) Target() (Target, error) {
	var (
		target Target
		n      int
	)
	if f.PlanetID != nil {
		target, n = Target{Kind: KindPlanet, ID: *f.PlanetID}, n+1
	}
	if f.CharacterID != nil {
		target, n = Target{Kind: KindCharacter, ID: *f.CharacterID}, n+1
	}
	if f.VehicleID != nil {
		target, n = Target{Kind: KindVehicle, ID: *f.VehicleID}, n+1
	}
	if n != 1 {
		return Target{}, ErrInvalidFavoriteTarget
	}
	return target, nil
}
