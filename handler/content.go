package handler

import (
	"Engage/pkg/context"
	"Engage/pkg/response"
	"Engage/service"
	"Engage/types"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const msgNoData = "No data found"

type Content struct {
	ContentService service.IContentService
}

func (h *Content) RegisterRouter(r gin.IRouter) {
	g := r.Group("/contents")
	g.GET("/", context.Wrap(h.ListContents))
	g.GET("/stats/", context.Wrap(h.GetStats))
}

// ListContents 内容列表（分页），附带互动指标和标签
func (h *Content) ListContents(c *gin.Context) error {
	var req types.ListContentsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	page, err := h.ContentService.ListContents(c.Request.Context(), req)
	if err != nil {
		return err
	}

	response.Success(c, page)
	return nil
}

// GetStats 筛选结果的汇总统计
func (h *Content) GetStats(c *gin.Context) error {
	var req types.ContentFilterReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	stats, err := h.ContentService.GetStats(c.Request.Context(), req)
	if errors.Is(err, service.ErrNoData) {
		// 空结果只返回 msg，与其他错误体不同
		c.JSON(http.StatusNotFound, gin.H{"msg": msgNoData})
		return nil
	}
	if err != nil {
		return err
	}

	response.Success(c, stats)
	return nil
}
