package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"canny-backend/internal/domain"
)

type LearningItemRepo struct{ db *gorm.DB }

func NewLearningItemRepo(db *gorm.DB) *LearningItemRepo { return &LearningItemRepo{db: db} }

func (r *LearningItemRepo) Create(ctx context.Context, it *domain.LearningItem) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *LearningItemRepo) FindOwned(ctx context.Context, id, ownerID string) (*domain.LearningItem, error) {
	return findOwned(r.db.WithContext(ctx), id, ownerID)
}

func findOwned(tx *gorm.DB, id, ownerID string) (*domain.LearningItem, error) {
	var it domain.LearningItem
	err := tx.Where("id = ? AND user_id = ?", id, ownerID).First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 不存在与不属于本人不作区分
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *LearningItemRepo) ListByOwner(ctx context.Context, ownerID string, publicOnly bool) ([]domain.LearningItem, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if publicOnly {
		q = q.Where("is_public = ?", true)
	}
	items := []domain.LearningItem{}
	if err := q.Order("started_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *LearningItemRepo) UpdateOwned(ctx context.Context, id, ownerID string, f domain.ItemFields) (*domain.LearningItem, error) {
	var out *domain.LearningItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先确认归属
		if _, err := findOwned(tx, id, ownerID); err != nil {
			return err
		}
		set := map[string]any{
			"title":  f.Title,
			"type":   f.Type,
			"author": f.Author,
			"status": f.Status,
			"notes":  f.Notes,
		}
		if f.IsPublic != nil {
			set["is_public"] = *f.IsPublic
		}
		if err := tx.Model(&domain.LearningItem{}).
			Where("id = ? AND user_id = ?", id, ownerID).
			Updates(set).Error; err != nil {
			return err
		}
		it, err := findOwned(tx, id, ownerID)
		if err != nil {
			return err
		}
		out = it
		return nil
	})
	return out, err
}

// DeleteOwned 幂等：0 行受影响同样视为成功
func (r *LearningItemRepo) DeleteOwned(ctx context.Context, id, ownerID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&domain.LearningItem{}).Error
}
