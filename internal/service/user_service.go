package service

import (
	"context"

	"canny-backend/internal/domain"
)

type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Profile(ctx context.Context, id string) (domain.Profile, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}
	return u.Profile(), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, p domain.ProfilePatch) (domain.Profile, error) {
	u, err := s.users.UpdateProfile(ctx, userID, p)
	if err != nil {
		return domain.Profile{}, err
	}
	return u.Profile(), nil
}

// Recent 管理端：最近注册的用户
func (s *UserService) Recent(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.users.List(ctx, offset, limit)
}
