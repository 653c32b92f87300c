package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"canny-backend/internal/domain"
	"canny-backend/internal/service"
	"canny-backend/internal/transport/http/ez"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Priority() int { return 20 }

func (h *UserHandler) Mount(public, authed ez.EZ) {
	// --- GET /users/:id  公开资料 ---
	ez.RegisterAction[struct{}, domain.Profile](public, ez.Action[struct{}, domain.Profile]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (domain.Profile, error) {
			return h.svc.Profile(c.Request.Context(), c.Param("id"))
		},
	})

	// --- PUT /users/profile  只改本人 ---
	type profileIn struct {
		FullName    string `json:"full_name"`
		CurrentRole string `json:"current_role"`
		Bio         string `json:"bio"`
	}
	ez.RegisterAction[profileIn, domain.Profile](authed, ez.Action[profileIn, domain.Profile]{
		Method: http.MethodPut,
		Path:   "/users/profile",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *profileIn) (domain.Profile, error) {
			return h.svc.UpdateProfile(c.Request.Context(), ez.UserID(c), domain.ProfilePatch{
				FullName:    in.FullName,
				CurrentRole: in.CurrentRole,
				Bio:         in.Bio,
			})
		},
	})
}
