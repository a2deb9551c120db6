package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用单表仓储，具体 DAO 通过内嵌获得基础查询
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.Db.WithContext(ctx).Model(new(T))
}

// FindByID 不存在时返回 gorm.ErrRecordNotFound
func (r Repo[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindAll(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*T, error) {
	var items []*T
	err := r.Model(ctx).Scopes(scopes...).Find(&items).Error
	return items, err
}

func (r Repo[T]) Count(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) (int64, error) {
	var total int64
	err := r.Model(ctx).Scopes(scopes...).Count(&total).Error
	return total, err
}
