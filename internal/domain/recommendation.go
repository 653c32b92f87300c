package domain

import "context"

// Recommendation 他人的公开条目，附与目标用户条目的相似度
type Recommendation struct {
	FeedItem
	Score float64 `json:"score"`
}

type RecommendationRepository interface {
	PublicByUser(ctx context.Context, userID string) ([]FeedItem, error)
	PublicExcept(ctx context.Context, userID string, limit int) ([]FeedItem, error)
}
