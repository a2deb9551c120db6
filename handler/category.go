package handler

import (
	"Engage/pkg/context"
	"Engage/pkg/response"
	"Engage/service"

	"github.com/gin-gonic/gin"
)

type Category struct {
	CategoryService service.ICategoryService
}

func (h *Category) RegisterRouter(r gin.IRouter) {
	r.GET("/categories/", context.Wrap(h.ListCategories))
}

// ListCategories 全部分类及其标签
func (h *Category) ListCategories(c *gin.Context) error {
	categories, err := h.CategoryService.ListCategories(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, categories)
	return nil
}
