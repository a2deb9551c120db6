package service

import (
	"Engage/config"
	"Engage/dao"
	"Engage/dao/cache"
	"Engage/models"
	"Engage/pkg/log"
	"Engage/types"
	"context"
	"fmt"

	"go.uber.org/zap"
)

var _ ICategoryService = (*CategoryService)(nil)

type ICategoryService interface {
	ListCategories(ctx context.Context) ([]types.CategoryInfo, error)
}

type CategoryService struct {
	Config        *config.Config
	CategoryDAO   *dao.CategoryDAO
	CategoryCache *cache.CategoryStorage
}

// ListCategories 全部分类及标签，不分页；优先读缓存，缓存异常只记日志不影响返回
func (s *CategoryService) ListCategories(ctx context.Context) ([]types.CategoryInfo, error) {
	categories, hit, err := s.CategoryCache.Get(ctx)
	if err != nil {
		log.L.Warn("category cache get failed", zap.Error(err))
	}

	if !hit {
		dbCtx, cancel := context.WithTimeout(ctx, s.Config.MySQL.QueryTimeout)
		defer cancel()

		categories, err = s.CategoryDAO.ListWithTags(dbCtx)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		if err := s.CategoryCache.Set(ctx, categories); err != nil {
			log.L.Warn("category cache set failed", zap.Error(err))
		}
	}

	result := make([]types.CategoryInfo, 0, len(categories))
	for _, c := range categories {
		result = append(result, toCategoryInfo(c))
	}
	return result, nil
}

func toCategoryInfo(c *models.Category) types.CategoryInfo {
	tags := make([]types.TagInfo, 0, len(c.Tags))
	for _, t := range c.Tags {
		tags = append(tags, types.TagInfo{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return types.CategoryInfo{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Tags:        tags,
	}
}
