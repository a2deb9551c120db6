package context

import (
	"Engage/pkg/log"
	"Engage/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxRequestID = "request_id"
)

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
				c.JSON(be.Status(), response.Response{
					Code: be.Status(),
					Msg:  be.Msg,
				})
				return
			}
			// 存储层等非预期错误，不把内部信息透给客户端
			log.L.Error("request failed",
				zap.String("request_id", GetRequestID(c)),
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: http.StatusInternalServerError,
				Msg:  "internal server error",
			})
		}
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(CtxRequestID)
}
