package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"canny-backend/internal/core/auth"
	"canny-backend/internal/domain"
	"canny-backend/internal/transport/http/ez"
)

// AuthJWT 无凭证 → 401；凭证无效 → 403；通过则把用户 ID 写入请求 context。
// 只校验令牌本身，不查库。
func AuthJWT(j *auth.JWTer, l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token := credential(c.GetHeader("Authorization"))
		if token == "" {
			ez.Fail(c, l, domain.ErrUnauthenticated)
			return
		}
		if !strings.EqualFold(scheme, "Bearer") {
			ez.Fail(c, l, domain.ErrForbidden)
			return
		}
		claims, err := j.Parse(token)
		if err != nil {
			ez.Fail(c, l, domain.ErrForbidden)
			return
		}
		c.Request = c.Request.WithContext(auth.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// credential 拆分 "Bearer <token>"
func credential(header string) (scheme, token string) {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return "", ""
	}
	return parts[0], parts[1]
}
