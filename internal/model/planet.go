package model

// Planet 星球
type Planet struct {
	ID      int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string  `gorm:"size:80;not null" json:"name"`
	Climate *string `gorm:"size:50" json:"climate"`
	Terrain *string `gorm:"size:50" json:"terrain"`
}

func (Planet) TableName() string {
	return "planet"
}
