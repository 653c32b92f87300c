package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"canny-backend/internal/domain"
	"canny-backend/internal/service"
	"canny-backend/internal/transport/http/ez"
)

type RecommendationHandler struct {
	svc *service.RecommendationService
}

func NewRecommendationHandler(svc *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

func (h *RecommendationHandler) Priority() int { return 60 }

type recommendationsOut struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
}

func (h *RecommendationHandler) Mount(public, _ ez.EZ) {
	// --- GET /recommendations/users/:id  公开 ---
	ez.RegisterAction[struct{}, recommendationsOut](public, ez.Action[struct{}, recommendationsOut]{
		Method: http.MethodGet,
		Path:   "/recommendations/users/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (recommendationsOut, error) {
			recs, err := h.svc.ForUser(c.Request.Context(), c.Param("id"))
			return recommendationsOut{Recommendations: recs}, err
		},
	})
}
