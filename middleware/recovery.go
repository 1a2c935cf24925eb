package middleware

import (
	"PromptLib/pkg/log"
	"PromptLib/pkg/response"
	"PromptLib/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery panic 时记录调用栈并返回 500
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered",
					zap.String("path", c.Request.URL.Path),
					zap.String("trace", utils.PanicTrace(r)),
				)
				response.Abort(c, http.StatusInternalServerError, "系统异常")
			}
		}()
		c.Next()
	}
}
