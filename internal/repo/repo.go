package repo

import (
	"context"

	"gorm.io/gorm"

	"canny-backend/internal/domain"
)

var (
	_ domain.UserRepository           = (*UserRepo)(nil)
	_ domain.LearningItemRepository   = (*LearningItemRepo)(nil)
	_ domain.FollowRepository         = (*FollowRepo)(nil)
	_ domain.FeedRepository           = (*FeedRepo)(nil)
	_ domain.RecommendationRepository = (*RecommendationRepo)(nil)
)

// AutoMigrate 建表/补列；正式环境的表结构由外部维护时可关闭
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(domain.Models()...)
}
