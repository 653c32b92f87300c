package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"canny-backend/internal/domain"
	"canny-backend/pkg/utils"
)

type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type AuthService struct {
	users  domain.UserRepository
	tokens TokenIssuer
}

func NewAuthService(users domain.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Session 登录/注册结果
type Session struct {
	Token string         `json:"token"`
	User  domain.Account `json:"user"`
}

type RegisterInput struct {
	Email       string
	Password    string
	FullName    string
	CurrentRole string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		PasswordHash: hash,
		FullName:     in.FullName,
		CurrentRole:  in.CurrentRole,
	}
	// 重复邮箱单独归类；其余写入失败一律按注册失败（400）处理
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicateIdentity) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrRegistrationFailed, err)
	}
	return s.session(u)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return s.session(u)
}

func (s *AuthService) Me(ctx context.Context, userID string) (domain.Account, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return domain.Account{}, err
	}
	return u.Account(), nil
}

func (s *AuthService) session(u *domain.User) (*Session, error) {
	tok, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{Token: tok, User: u.Account()}, nil
}
