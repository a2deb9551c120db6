package service

import (
	"Engage/config"
	"Engage/dao"
	"Engage/models"
	"Engage/pkg/paginator"
	"Engage/types"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrNoData 筛选结果为空时统计接口返回 404，而不是全 0
var ErrNoData = errors.New("no data found")

// timeNow 测试里替换
var timeNow = func() time.Time { return time.Now().UTC() }

var _ IContentService = (*ContentService)(nil)

type IContentService interface {
	ListContents(ctx context.Context, req types.ListContentsReq) (*paginator.Page[*types.ContentListItem], error)
	GetStats(ctx context.Context, req types.ContentFilterReq) (*types.ContentStatsResp, error)
}

type ContentService struct {
	Config        *config.Config
	DB            *gorm.DB
	ContentDAO    *dao.ContentDAO
	ContentTagDAO *dao.ContentTagDAO
}

// ListContents 筛选 -> 排序 -> 分页 -> 批量取标签 -> 计算互动指标
// count / 分页 / 标签在同一个只读事务里，避免翻页时看到不一致的快照
func (s *ContentService) ListContents(ctx context.Context, req types.ListContentsReq) (*paginator.Page[*types.ContentListItem], error) {
	filter, err := BuildContentFilter(req.ContentFilterReq, timeNow())
	if err != nil {
		return nil, err
	}
	pager, err := BuildPaginator(req, s.Config.App)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.Config.MySQL.QueryTimeout)
	defer cancel()

	var (
		total    int64
		contents []*models.Content
		tagNames map[uint64][]string
	)
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		contentDAO := s.ContentDAO.WithTx(tx)

		var err error
		total, err = contentDAO.CountByFilter(ctx, filter)
		if err != nil {
			return fmt.Errorf("count contents: %w", err)
		}
		if pager.OutOfRange(total) {
			return nil
		}

		contents, err = contentDAO.FindPage(ctx, filter, pager.Offset(), pager.Limit())
		if err != nil {
			return fmt.Errorf("find contents: %w", err)
		}

		ids := make([]uint64, 0, len(contents))
		for _, c := range contents {
			ids = append(ids, c.ID)
		}
		tagNames, err = s.ContentTagDAO.WithTx(tx).TagNamesByContentIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("find content tags: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	items := make([]*types.ContentListItem, 0, len(contents))
	for _, c := range contents {
		items = append(items, &types.ContentListItem{
			Author:  toAuthorInfo(c.Author),
			Content: toContentInfo(c, tagNames[c.ID]),
		})
	}
	return paginator.NewPage(pager, total, items), nil
}

// GetStats 对整个筛选结果做聚合，不分页
func (s *ContentService) GetStats(ctx context.Context, req types.ContentFilterReq) (*types.ContentStatsResp, error) {
	filter, err := BuildContentFilter(req, timeNow())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.Config.MySQL.QueryTimeout)
	defer cancel()

	agg, err := s.ContentDAO.Aggregate(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("aggregate contents: %w", err)
	}
	if agg.TotalContents == 0 {
		return nil, ErrNoData
	}
	return BuildStats(agg), nil
}

func toAuthorInfo(a *models.Author) *types.AuthorInfo {
	if a == nil {
		return nil
	}
	return &types.AuthorInfo{
		ID:        a.ID,
		Name:      a.Name,
		Username:  a.Username,
		UniqueID:  a.UniqueID,
		URL:       a.URL,
		Title:     a.Title,
		Followers: a.Followers,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toContentInfo(c *models.Content, tags []string) *types.ContentInfo {
	if tags == nil {
		tags = make([]string, 0)
	}
	engagement := TotalEngagement(c.LikeCount, c.CommentCount, c.ShareCount)
	return &types.ContentInfo{
		ID:              c.ID,
		Author:          c.AuthorID,
		UniqueID:        c.UniqueID,
		URL:             c.URL,
		Title:           c.Title,
		LikeCount:       c.LikeCount,
		CommentCount:    c.CommentCount,
		ViewCount:       c.ViewCount,
		ShareCount:      c.ShareCount,
		ThumbnailURL:    c.ThumbnailURL,
		Timestamp:       c.Timestamp,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		EngagementRate:  EngagementRate(engagement, c.ViewCount),
		TotalEngagement: engagement,
		Tags:            tags,
	}
}
