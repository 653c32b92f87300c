package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"canny-backend/internal/domain"
	"canny-backend/internal/service"
	"canny-backend/internal/transport/http/ez"
)

type FollowHandler struct {
	svc *service.FollowService
}

func NewFollowHandler(svc *service.FollowService) *FollowHandler { return &FollowHandler{svc: svc} }

func (h *FollowHandler) Priority() int { return 40 }

func (h *FollowHandler) Mount(public, authed ez.EZ) {
	ez.RegisterAction[struct{}, *domain.Follow](authed, ez.Action[struct{}, *domain.Follow]{
		Method: http.MethodPost,
		Path:   "/follows/:userId",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Follow, error) {
			return h.svc.Follow(c.Request.Context(), ez.UserID(c), c.Param("userId"))
		},
	})

	ez.RegisterAction[struct{}, ack](authed, ez.Action[struct{}, ack]{
		Method: http.MethodDelete,
		Path:   "/follows/:userId",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (ack, error) {
			if err := h.svc.Unfollow(c.Request.Context(), ez.UserID(c), c.Param("userId")); err != nil {
				return ack{}, err
			}
			return ack{Message: "Unfollowed successfully"}, nil
		},
	})

	ez.RegisterAction[struct{}, []domain.Profile](public, ez.Action[struct{}, []domain.Profile]{
		Method: http.MethodGet,
		Path:   "/users/:id/following",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Profile, error) {
			return h.svc.Following(c.Request.Context(), c.Param("id"))
		},
	})

	ez.RegisterAction[struct{}, []domain.Profile](public, ez.Action[struct{}, []domain.Profile]{
		Method: http.MethodGet,
		Path:   "/users/:id/followers",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Profile, error) {
			return h.svc.Followers(c.Request.Context(), c.Param("id"))
		},
	})
}
