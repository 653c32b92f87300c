package service

import (
	"context"
	"time"

	"canny-backend/internal/domain"
	"canny-backend/pkg/utils"
)

type LearningItemService struct {
	items domain.LearningItemRepository
	now   func() time.Time
}

func NewLearningItemService(items domain.LearningItemRepository) *LearningItemService {
	return &LearningItemService{items: items, now: time.Now}
}

type NewItem struct {
	Title     string
	Type      string
	Author    string
	Status    string
	Notes     string
	IsPublic  bool
	StartedAt *time.Time // nil 则取当前时间
}

func (s *LearningItemService) Create(ctx context.Context, ownerID string, in NewItem) (*domain.LearningItem, error) {
	started := s.now()
	if in.StartedAt != nil && !in.StartedAt.IsZero() {
		started = *in.StartedAt
	}
	it := &domain.LearningItem{
		ID:        utils.NewID(),
		UserID:    ownerID,
		Title:     in.Title,
		Type:      in.Type,
		Author:    in.Author,
		Status:    in.Status,
		Notes:     in.Notes,
		IsPublic:  in.IsPublic,
		StartedAt: started.UTC(),
	}
	if err := s.items.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// ListPublic 任何人可见：指定用户的公开条目
func (s *LearningItemService) ListPublic(ctx context.Context, userID string) ([]domain.LearningItem, error) {
	return s.items.ListByOwner(ctx, userID, true)
}

// ListMine 本人全部条目（含私有）
func (s *LearningItemService) ListMine(ctx context.Context, ownerID string) ([]domain.LearningItem, error) {
	return s.items.ListByOwner(ctx, ownerID, false)
}

func (s *LearningItemService) Get(ctx context.Context, id, ownerID string) (*domain.LearningItem, error) {
	return s.items.FindOwned(ctx, id, ownerID)
}

func (s *LearningItemService) Update(ctx context.Context, id, ownerID string, f domain.ItemFields) (*domain.LearningItem, error) {
	return s.items.UpdateOwned(ctx, id, ownerID, f)
}

func (s *LearningItemService) Delete(ctx context.Context, id, ownerID string) error {
	return s.items.DeleteOwned(ctx, id, ownerID)
}
