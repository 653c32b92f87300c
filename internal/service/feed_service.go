package service

import (
	"context"

	"canny-backend/internal/domain"
)

// FeedLimit 动态流固定上限，不分页
const FeedLimit = 50

type FeedService struct {
	feed domain.FeedRepository
}

func NewFeedService(feed domain.FeedRepository) *FeedService {
	return &FeedService{feed: feed}
}

func (s *FeedService) Feed(ctx context.Context, userID string) ([]domain.FeedItem, error) {
	return s.feed.PublicFromFollowed(ctx, userID, FeedLimit)
}
