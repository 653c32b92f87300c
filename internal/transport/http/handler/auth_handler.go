package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"canny-backend/internal/domain"
	"canny-backend/internal/service"
	"canny-backend/internal/transport/http/ez"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Priority() int { return 10 }

func (h *AuthHandler) Mount(public, authed ez.EZ) {
	// --- POST /auth/register ---
	type registerIn struct {
		Email       string `json:"email"        binding:"required"`
		Password    string `json:"password"     binding:"required"`
		FullName    string `json:"full_name"`
		CurrentRole string `json:"current_role"`
	}
	ez.RegisterAction[registerIn, *service.Session](public, ez.Action[registerIn, *service.Session]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *registerIn) (*service.Session, error) {
			return h.svc.Register(c.Request.Context(), service.RegisterInput{
				Email:       in.Email,
				Password:    in.Password,
				FullName:    in.FullName,
				CurrentRole: in.CurrentRole,
			})
		},
	})

	// --- POST /auth/login  缺字段同样按凭证错误处理 ---
	type loginIn struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	ez.RegisterAction[loginIn, *service.Session](public, ez.Action[loginIn, *service.Session]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (*service.Session, error) {
			return h.svc.Login(c.Request.Context(), in.Email, in.Password)
		},
	})

	// --- GET /me ---
	ez.RegisterAction[struct{}, domain.Account](authed, ez.Action[struct{}, domain.Account]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (domain.Account, error) {
			return h.svc.Me(c.Request.Context(), ez.UserID(c))
		},
	})
}
