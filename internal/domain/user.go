package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	FullName     string    `gorm:"size:128" json:"full_name"`
	CurrentRole  string    `gorm:"size:128" json:"current_role"`
	Bio          string    `gorm:"type:text" json:"bio"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Account 本人可见的账号信息（注册/登录/me）
type Account struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	CurrentRole string `json:"current_role"`
}

// Profile 任何人可见的公开资料，不含邮箱
type Profile struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	CurrentRole string    `json:"current_role"`
	Bio         string    `json:"bio"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *User) Account() Account {
	return Account{ID: u.ID, Email: u.Email, FullName: u.FullName, CurrentRole: u.CurrentRole}
}

func (u *User) Profile() Profile {
	return Profile{ID: u.ID, FullName: u.FullName, CurrentRole: u.CurrentRole, Bio: u.Bio, CreatedAt: u.CreatedAt}
}

// ProfilePatch 资料更新字段（整体覆盖）
type ProfilePatch struct {
	FullName    string
	CurrentRole string
	Bio         string
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, offset, limit int) ([]User, int64, error)
	UpdateProfile(ctx context.Context, id string, p ProfilePatch) (*User, error)
}
