package model

// User 用户模型，由外部身份系统维护，本服务只读
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	Email    string `gorm:"size:120;not null;uniqueIndex;comment:邮箱" json:"email"`
	Password string `gorm:"size:80;not null;comment:密码" json:"-"` // 不序列化
	IsActive bool   `gorm:"not null;comment:是否激活" json:"-"`
}

func (User) TableName() string {
	return "user"
}
