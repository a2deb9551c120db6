package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 错误响应体
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// Success 成功时直接返回数据本身，不再包一层 code/msg
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
