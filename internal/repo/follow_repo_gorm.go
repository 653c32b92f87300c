package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"canny-backend/internal/domain"
)

type FollowRepo struct{ db *gorm.DB }

func NewFollowRepo(db *gorm.DB) *FollowRepo { return &FollowRepo{db: db} }

func (r *FollowRepo) Create(ctx context.Context, f *domain.Follow) error {
	err := r.db.WithContext(ctx).Create(f).Error
	if err != nil && (isDupKey(err) || isFKViolation(err)) {
		return fmt.Errorf("%w: %v", domain.ErrConstraintViolation, err)
	}
	return err
}

func (r *FollowRepo) Delete(ctx context.Context, followerID, followingID string) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&domain.Follow{}).Error
}

func (r *FollowRepo) Following(ctx context.Context, userID string) ([]domain.User, error) {
	return r.users(ctx, "follows.following_id", "follows.follower_id", userID)
}

func (r *FollowRepo) Followers(ctx context.Context, userID string) ([]domain.User, error) {
	return r.users(ctx, "follows.follower_id", "follows.following_id", userID)
}

// users 取边另一端的用户，最新关注在前
func (r *FollowRepo) users(ctx context.Context, joinCol, whereCol, userID string) ([]domain.User, error) {
	users := []domain.User{}
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Select("users.*").
		Joins("JOIN follows ON users.id = "+joinCol).
		Where(whereCol+" = ?", userID).
		Order("follows.created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
