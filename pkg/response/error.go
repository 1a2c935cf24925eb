package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BizError 携带 HTTP 状态码的业务错误，Cause 保留底层错误供 errors.Is 判断
type BizError struct {
	Code  int
	Msg   string
	Cause error
}

func (e *BizError) Error() string {
	return e.Msg
}

func (e *BizError) Unwrap() error {
	return e.Cause
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// WrapError 以 err 文本作为 Msg
func WrapError(code int, err error) *BizError {
	return &BizError{
		Code:  code,
		Msg:   err.Error(),
		Cause: err,
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}

// StatusOf 非 BizError 一律视为 500
func StatusOf(err error) int {
	if be, ok := err.(*BizError); ok && be.Code >= 400 && be.Code < 600 {
		return be.Code
	}
	if err == nil {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}
