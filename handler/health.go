package handler

import (
	"Engage/pkg/context"
	"Engage/pkg/database"
	"Engage/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Health struct {
	DB *gorm.DB
}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/healthz", context.Wrap(h.Check))
}

func (h *Health) Check(c *gin.Context) error {
	if err := database.Ping(c.Request.Context(), h.DB); err != nil {
		return response.NewError(http.StatusServiceUnavailable, "database unavailable")
	}
	response.Success(c, gin.H{"status": "ok"})
	return nil
}
