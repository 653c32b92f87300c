package domain

import (
	"context"
	"time"
)

// Follow 有向边 follower → following，复合主键保证唯一
type Follow struct {
	FollowerID  string    `gorm:"primaryKey;size:36" json:"follower_id"`
	FollowingID string    `gorm:"primaryKey;size:36;index" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`

	// 仅用于建外键；两端用户注销时边一并删除
	Follower  User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Following User `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Follow) TableName() string { return "follows" }

type FollowRepository interface {
	Create(ctx context.Context, f *Follow) error
	Delete(ctx context.Context, followerID, followingID string) error
	Following(ctx context.Context, userID string) ([]User, error)
	Followers(ctx context.Context, userID string) ([]User, error)
}

// FeedItem 带作者姓名/角色的公开条目
type FeedItem struct {
	LearningItem
	FullName    string `json:"full_name"`
	CurrentRole string `json:"current_role"`
}

type FeedRepository interface {
	// PublicFromFollowed 关注对象的公开条目，started_at 倒序，最多 limit 条
	PublicFromFollowed(ctx context.Context, followerID string, limit int) ([]FeedItem, error)
}
