package dao

import (
	"Engage/models"
	"context"

	"gorm.io/gorm"
)

type ContentTagDAO struct {
	Repo[models.ContentTag]
}

func NewContentTagDAO(db *gorm.DB) *ContentTagDAO {
	return &ContentTagDAO{Repo: NewRepo[models.ContentTag](db)}
}

func (d *ContentTagDAO) WithTx(tx *gorm.DB) *ContentTagDAO {
	return &ContentTagDAO{Repo: NewRepo[models.ContentTag](tx)}
}

// TagNamesByContentIDs 一次查出一页内容的全部标签名，按关联创建顺序
func (d *ContentTagDAO) TagNamesByContentIDs(ctx context.Context, contentIDs []uint64) (map[uint64][]string, error) {
	result := make(map[uint64][]string, len(contentIDs))
	if len(contentIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		ContentID uint64
		Name      string
	}
	err := d.Model(ctx).
		Select("content_tags.content_id, tags.name").
		Joins("JOIN tags ON tags.id = content_tags.tag_id").
		Where("content_tags.content_id IN ?", contentIDs).
		Order("content_tags.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ContentID] = append(result[row.ContentID], row.Name)
	}
	return result, nil
}

type CategoryDAO struct {
	Repo[models.Category]
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{Repo: NewRepo[models.Category](db)}
}

// ListWithTags 全部分类及其标签，都按 id 升序
func (d *CategoryDAO) ListWithTags(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := d.Model(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.id ASC")
		}).
		Order("categories.id ASC").
		Find(&categories).Error
	return categories, err
}
