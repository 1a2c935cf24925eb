package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

// Fail 业务失败，HTTP 状态码取 code（合法范围内），否则 200
func Fail(c *gin.Context, code int, msg string) {
	status := http.StatusOK
	if code >= 400 && code < 600 {
		status = code
	}
	c.JSON(status, Response{
		Code: code,
		Msg:  msg,
	})
}
