package model

// Vehicle 载具
type Vehicle struct {
	ID    int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"size:80;not null" json:"name"`
	Model *string `gorm:"size:50" json:"model"`
	Price *int64  `json:"price"`
}

func (Vehicle) TableName() string {
	return "vehicle"
}
