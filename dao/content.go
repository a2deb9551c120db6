package dao

import (
	"Engage/models"
	"context"

	"gorm.io/gorm"
)

type ContentDAO struct {
	Repo[models.Content]
}

func NewContentDAO(db *gorm.DB) *ContentDAO {
	return &ContentDAO{Repo: NewRepo[models.Content](db)}
}

// WithTx 返回绑定到事务上的 DAO
func (d *ContentDAO) WithTx(tx *gorm.DB) *ContentDAO {
	return &ContentDAO{Repo: NewRepo[models.Content](tx)}
}

// CountByFilter 统计符合条件的内容数
func (d *ContentDAO) CountByFilter(ctx context.Context, filter ContentFilter) (int64, error) {
	return d.Count(ctx, filter.Scopes()...)
}

// FindPage 按 id 倒序（新入库在前）取一页，附带作者
func (d *ContentDAO) FindPage(ctx context.Context, filter ContentFilter, offset, limit int) ([]*models.Content, error) {
	var contents []*models.Content
	err := d.Model(ctx).
		Scopes(filter.Scopes()...).
		Preload("Author").
		Order("contents.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&contents).Error
	return contents, err
}

// ContentAggregate 聚合结果，SUM 在空集上已经 COALESCE 成 0
type ContentAggregate struct {
	TotalLikes     int64
	TotalShares    int64
	TotalComments  int64
	TotalViews     int64
	TotalContents  int64
	TotalFollowers int64
}

// Aggregate 对筛选结果整体求和
// followers 按 (内容, 作者) 行累加，同一作者多条内容会被重复计算
func (d *ContentDAO) Aggregate(ctx context.Context, filter ContentFilter) (*ContentAggregate, error) {
	var agg ContentAggregate
	err := d.Model(ctx).
		Select("COALESCE(SUM(contents.like_count), 0) AS total_likes, " +
			"COALESCE(SUM(contents.share_count), 0) AS total_shares, " +
			"COALESCE(SUM(contents.comment_count), 0) AS total_comments, " +
			"COALESCE(SUM(contents.view_count), 0) AS total_views, " +
			"COUNT(contents.id) AS total_contents, " +
			"COALESCE(SUM(authors.followers), 0) AS total_followers").
		Joins("JOIN authors ON authors.id = contents.author_id").
		Scopes(filter.Scopes()...).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}
