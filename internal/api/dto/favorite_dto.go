package dto

// FavoriteRequest 添加/取消收藏请求体
type FavoriteRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

// FavoriteInfo 收藏记录信息，未收藏的类型字段为 null
type FavoriteInfo struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	PlanetID    *int64 `json:"planet_id"`
	CharacterID *int64 `json:"character_id"`
	VehicleID   *int64 `json:"vehicle_id"`
}
