package service

import (
	"context"

	"holonet-go/internal/api/dto"
	"holonet-go/internal/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers 获取全部用户
func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserInfo, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserInfo, 0, len(users))
	for _, u := range users {
		items = append(items, dto.UserInfo{ID: u.ID, Email: u.Email})
	}
	return items, nil
}

// GetUser 获取单个用户
func (s *UserService) GetUser(ctx context.Context, id int64) (*dto.UserInfo, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, ErrUserNotFound)
	}
	return &dto.UserInfo{ID: u.ID, Email: u.Email}, nil
}
