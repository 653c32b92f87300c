package domain

import (
	"context"
	"time"
)

type LearningItem struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index:idx_items_owner_started,priority:1" json:"user_id"`
	Title     string    `gorm:"size:255" json:"title"`
	Type      string    `gorm:"size:32" json:"type"`
	Author    string    `gorm:"size:255" json:"author"`
	Status    string    `gorm:"size:32" json:"status"`
	Notes     string    `gorm:"type:text" json:"notes"`
	IsPublic  bool      `gorm:"not null" json:"is_public"`
	StartedAt time.Time `gorm:"not null;index:idx_items_owner_started,priority:2" json:"started_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LearningItem) TableName() string { return "learning_items" }

// ItemFields 可由所有者编辑的字段。IsPublic 为 nil 表示不修改。
type ItemFields struct {
	Title    string
	Type     string
	Author   string
	Status   string
	Notes    string
	IsPublic *bool
}

type LearningItemRepository interface {
	Create(ctx context.Context, it *LearningItem) error
	// FindOwned 仅当 id 存在且属于 ownerID 时返回，否则 ErrNotFound
	FindOwned(ctx context.Context, id, ownerID string) (*LearningItem, error)
	ListByOwner(ctx context.Context, ownerID string, publicOnly bool) ([]LearningItem, error)
	UpdateOwned(ctx context.Context, id, ownerID string, f ItemFields) (*LearningItem, error)
	DeleteOwned(ctx context.Context, id, ownerID string) error
}
