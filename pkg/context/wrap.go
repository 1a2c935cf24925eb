package context

import (
	"PromptLib/pkg/response"
	"errors"

	"github.com/gin-gonic/gin"
)

const (
	CtxAdminID   = "admin_id"
	CtxSessionID = "session_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			response.Fail(c, response.StatusOf(err), err.Error())
		}
	}
}

func GetAdminID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxAdminID)
	if !ok {
		return 0, errors.New("admin_id 不存在")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("admin_id 类型错误")
	}

	return uid, nil
}

func GetSessionID(c *gin.Context) string {
	return c.GetString(CtxSessionID)
}
