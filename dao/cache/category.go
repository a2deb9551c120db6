package cache

import (
	"Engage/config"
	"Engage/models"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const categoryKey = "engage:categories:v1"

// CategoryStorage 分类+标签的整体缓存，redis 为 nil 时所有操作都是空操作
type CategoryStorage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCategoryStorage(rds *redis.Client, conf *config.Config) *CategoryStorage {
	return &CategoryStorage{redis: rds, ttl: conf.Redis.CategoryTTL}
}

func (s *CategoryStorage) Enabled() bool {
	return s != nil && s.redis != nil
}

// Get 命中返回 (list, true, nil)，未命中返回 (nil, false, nil)
func (s *CategoryStorage) Get(ctx context.Context) ([]*models.Category, bool, error) {
	if !s.Enabled() {
		return nil, false, nil
	}
	raw, err := s.redis.Get(ctx, categoryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var categories []*models.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		// 脏数据直接丢掉，下次回源重建
		_ = s.redis.Del(ctx, categoryKey).Err()
		return nil, false, err
	}
	return categories, true, nil
}

func (s *CategoryStorage) Set(ctx context.Context, categories []*models.Category) error {
	if !s.Enabled() {
		return nil
	}
	raw, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, categoryKey, raw, s.ttl).Err()
}

// Del 分类数据变化后由写入方调用
func (s *CategoryStorage) Del(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	return s.redis.Del(ctx, categoryKey).Err()
}
