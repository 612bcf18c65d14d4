package dto

// SearchRequest 目录搜索参数
type SearchRequest struct {
	Q     string `form:"q" binding:"required"`
	Kind  string `form:"kind"`
	Limit int    `form:"limit"`
}

// SearchHit 搜索结果条目
type SearchHit struct {
	Kind          string `json:"kind"`
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	FavoriteCount int64  `json:"favorite_count"`
}

// SearchData 搜索结果
type SearchData struct {
	Hits   []SearchHit `json:"hits"`
	Source string      `json:"source"` // elasticsearch | database
}
