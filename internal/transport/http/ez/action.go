package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"canny-backend/internal/core/auth"
	"canny-backend/internal/domain"
	resp "canny-backend/internal/transport/http/response"
)

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param 取
)

type EZ struct {
	g   *gin.RouterGroup
	log *zap.Logger
}

func New(g *gin.RouterGroup, l *zap.Logger) EZ {
	if l == nil {
		l = zap.NewNop()
	}
	return EZ{g: g, log: l}
}

// 动作定义：I 入参，O 出参
type Action[I any, O any] struct {
	Method  string // GET | POST | PUT | DELETE
	Path    string // 例："/auth/login"、"/learning-items/:id"
	Binder  Binder
	Auth    bool // 要求已认证身份（分组上挂 AuthJWT）
	Handler func(c *gin.Context, in *I) (O, error)
}

// UserID 当前请求的已认证用户
func UserID(c *gin.Context) string {
	id, _ := auth.UserIDFrom(c.Request.Context())
	return id
}

func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		// 1) 鉴权
		if a.Auth && UserID(c) == "" {
			Fail(c, e.log, domain.ErrUnauthenticated)
			return
		}

		// 2) 绑定入参
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		default:
		}
		if bindErr != nil {
			msg := "invalid request body"
			var tooLarge *http.MaxBytesError
			if errors.As(bindErr, &tooLarge) {
				msg = "request body too large"
			}
			Fail(c, e.log, &AErr{Code: resp.CodeBadRequest, Kind: KindInvalidInput, Msg: msg, Err: bindErr})
			return
		}

		// 3) 执行 + 统一错误映射
		out, err := a.Handler(c, &in)
		if err != nil {
			Fail(c, e.log, err)
			return
		}
		c.JSON(http.StatusOK, resp.OK(out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default: // 默认 POST
		e.g.POST(a.Path, h)
	}
}

// Fail 写出错误响应并中止。原始错误只进日志，不回给客户端。
func Fail(c *gin.Context, l *zap.Logger, err error) {
	ae := Classify(err)
	_ = c.Error(err)
	if ae.Code >= http.StatusInternalServerError && l != nil {
		l.Error("request failed",
			zap.String("rid", c.GetString(KeyRequestID)),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Error(err),
		)
	}
	c.AbortWithStatusJSON(resp.Status(ae.Code), resp.Error(ae.Code, ae.Kind, ae.Msg))
}

// KeyRequestID 请求 ID 在 gin.Context 与响应头中的键
const KeyRequestID = "X-Request-ID"
