package repo

import (
	"context"

	"gorm.io/gorm"

	"canny-backend/internal/domain"
)

type RecommendationRepo struct{ db *gorm.DB }

func NewRecommendationRepo(db *gorm.DB) *RecommendationRepo { return &RecommendationRepo{db: db} }

func (r *RecommendationRepo) PublicByUser(ctx context.Context, userID string) ([]domain.FeedItem, error) {
	return scanFeed(publicItems(r.db.WithContext(ctx)).
		Where("li.user_id = ?", userID).
		Order("li.started_at DESC"))
}

// PublicExcept 候选池：其他用户最新的公开条目
func (r *RecommendationRepo) PublicExcept(ctx context.Context, userID string, limit int) ([]domain.FeedItem, error) {
	return scanFeed(publicItems(r.db.WithContext(ctx)).
		Where("li.user_id <> ?", userID).
		Order("li.started_at DESC").
		Limit(limit))
}
