package dto

// UserInfo 用户公开信息
type UserInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
