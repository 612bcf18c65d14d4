package model

// CatalogItem 跨类型的目录条目摘要，用于搜索和索引
type CatalogItem struct {
	Kind Kind   `json:"kind"`
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
