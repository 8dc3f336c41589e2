package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusOk  = "ok"
	StatusErr = "err"
)

// Response 统一响应格式
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Status: StatusOk,
		Data:   data,
	})
}

func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, Response{
		Status:  StatusErr,
		Message: msg,
	})
}

// Abort 中间件终止请求
func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Status:  StatusErr,
		Message: msg,
	})
}
