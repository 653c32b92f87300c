package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"canny-backend/internal/domain"
	"canny-backend/internal/service"
	"canny-backend/internal/transport/http/ez"
)

type LearningItemHandler struct {
	svc *service.LearningItemService
}

func NewLearningItemHandler(svc *service.LearningItemService) *LearningItemHandler {
	return &LearningItemHandler{svc: svc}
}

func (h *LearningItemHandler) Priority() int { return 30 }

type createItemIn struct {
	Title     string     `json:"title"`
	Type      string     `json:"type"`
	Author    string     `json:"author"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes"`
	IsPublic  bool       `json:"is_public"`
	StartedAt *time.Time `json:"started_at"`
}

type updateItemIn struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	Author   string `json:"author"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
	IsPublic *bool  `json:"is_public"` // 省略则不改
}

type ack struct {
	Message string `json:"message"`
}

func (h *LearningItemHandler) Mount(public, authed ez.EZ) {
	// --- GET /users/:id/learning-items  公开条目 ---
	ez.RegisterAction[struct{}, []domain.LearningItem](public, ez.Action[struct{}, []domain.LearningItem]{
		Method: http.MethodGet,
		Path:   "/users/:id/learning-items",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.LearningItem, error) {
			return h.svc.ListPublic(c.Request.Context(), c.Param("id"))
		},
	})

	// --- POST /learning-items ---
	ez.RegisterAction[createItemIn, *domain.LearningItem](authed, ez.Action[createItemIn, *domain.LearningItem]{
		Method: http.MethodPost,
		Path:   "/learning-items",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *createItemIn) (*domain.LearningItem, error) {
			return h.svc.Create(c.Request.Context(), ez.UserID(c), service.NewItem{
				Title:     in.Title,
				Type:      in.Type,
				Author:    in.Author,
				Status:    in.Status,
				Notes:     in.Notes,
				IsPublic:  in.IsPublic,
				StartedAt: in.StartedAt,
			})
		},
	})

	// --- GET /learning-items  本人全部（含私有） ---
	ez.RegisterAction[struct{}, []domain.LearningItem](authed, ez.Action[struct{}, []domain.LearningItem]{
		Method: http.MethodGet,
		Path:   "/learning-items",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.LearningItem, error) {
			return h.svc.ListMine(c.Request.Context(), ez.UserID(c))
		},
	})

	// --- GET /learning-items/:id  仅所有者 ---
	ez.RegisterAction[struct{}, *domain.LearningItem](authed, ez.Action[struct{}, *domain.LearningItem]{
		Method: http.MethodGet,
		Path:   "/learning-items/:id",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.LearningItem, error) {
			return h.svc.Get(c.Request.Context(), c.Param("id"), ez.UserID(c))
		},
	})

	// --- PUT /learning-items/:id  不存在与非本人同为 404 ---
	ez.RegisterAction[updateItemIn, *domain.LearningItem](authed, ez.Action[updateItemIn, *domain.LearningItem]{
		Method: http.MethodPut,
		Path:   "/learning-items/:id",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *updateItemIn) (*domain.LearningItem, error) {
			return h.svc.Update(c.Request.Context(), c.Param("id"), ez.UserID(c), domain.ItemFields{
				Title:    in.Title,
				Type:     in.Type,
				Author:   in.Author,
				Status:   in.Status,
				Notes:    in.Notes,
				IsPublic: in.IsPublic,
			})
		},
	})

	// --- DELETE /learning-items/:id  幂等 ---
	ez.RegisterAction[struct{}, ack](authed, ez.Action[struct{}, ack]{
		Method: http.MethodDelete,
		Path:   "/learning-items/:id",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (ack, error) {
			if err := h.svc.Delete(c.Request.Context(), c.Param("id"), ez.UserID(c)); err != nil {
				return ack{}, err
			}
			return ack{Message: "Deleted successfully"}, nil
		},
	})
}
