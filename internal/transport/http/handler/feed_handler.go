package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"canny-backend/internal/domain"
	"canny-backend/internal/service"
	"canny-backend/internal/transport/http/ez"
)

type FeedHandler struct {
	svc *service.FeedService
}

func NewFeedHandler(svc *service.FeedService) *FeedHandler { return &FeedHandler{svc: svc} }

func (h *FeedHandler) Priority() int { return 50 }

func (h *FeedHandler) Mount(_, authed ez.EZ) {
	ez.RegisterAction[struct{}, []domain.FeedItem](authed, ez.Action[struct{}, []domain.FeedItem]{
		Method: http.MethodGet,
		Path:   "/feed",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.FeedItem, error) {
			return h.svc.Feed(c.Request.Context(), ez.UserID(c))
		},
	})
}
