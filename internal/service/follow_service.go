package service

import (
	"context"
	"fmt"

	"canny-backend/internal/domain"
)

type FollowService struct {
	follows domain.FollowRepository
}

func NewFollowService(follows domain.FollowRepository) *FollowService {
	return &FollowService{follows: follows}
}

// Follow 建立 follower → target；重复关注由复合主键拒绝，自己关注自己直接拒绝
func (s *FollowService) Follow(ctx context.Context, followerID, targetID string) (*domain.Follow, error) {
	if followerID == targetID {
		return nil, fmt.Errorf("%w: cannot follow yourself", domain.ErrConstraintViolation)
	}
	f := &domain.Follow{FollowerID: followerID, FollowingID: targetID}
	if err := s.follows.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID string) error {
	return s.follows.Delete(ctx, followerID, targetID)
}

func (s *FollowService) Following(ctx context.Context, userID string) ([]domain.Profile, error) {
	return profiles(s.follows.Following(ctx, userID))
}

func (s *FollowService) Followers(ctx context.Context, userID string) ([]domain.Profile, error) {
	return profiles(s.follows.Followers(ctx, userID))
}

func profiles(users []domain.User, err error) ([]domain.Profile, error) {
	if err != nil {
		return nil, err
	}
	out := make([]domain.Profile, 0, len(users))
	for i := range users {
		out = append(out, users[i].Profile())
	}
	return out, nil
}
