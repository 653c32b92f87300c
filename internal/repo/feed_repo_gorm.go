package repo

import (
	"context"

	"gorm.io/gorm"

	"canny-backend/internal/domain"
)

type FeedRepo struct{ db *gorm.DB }

func NewFeedRepo(db *gorm.DB) *FeedRepo { return &FeedRepo{db: db} }

// publicItems 公开条目连同作者姓名/角色
func publicItems(db *gorm.DB) *gorm.DB {
	return db.Table("learning_items AS li").
		Select("li.*, u.full_name AS full_name, u.current_role AS current_role").
		Joins("JOIN users u ON li.user_id = u.id").
		Where("li.is_public = ?", true)
}

func scanFeed(q *gorm.DB) ([]domain.FeedItem, error) {
	items := []domain.FeedItem{}
	if err := q.Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *FeedRepo) PublicFromFollowed(ctx context.Context, followerID string, limit int) ([]domain.FeedItem, error) {
	db := r.db.WithContext(ctx)
	followed := db.Model(&domain.Follow{}).
		Select("following_id").
		Where("follower_id = ?", followerID)

	return scanFeed(publicItems(db).
		Where("li.user_id IN (?)", followed).
		Order("li.started_at DESC").
		Limit(limit))
}
