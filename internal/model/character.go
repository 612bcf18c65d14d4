package model

// Character 角色
type Character struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"size:80;not null" json:"name"`
	BirthYear *string `gorm:"size:10" json:"birth_year"`
	Gender    *string `gorm:"size:10" json:"gender"`
}

func (Character) TableName() string {
	return "character"
}
