package types

import "time"

// ContentFilterReq 内容筛选参数，全部按字符串接收，解析/校验在 service 层完成
type ContentFilterReq struct {
	AuthorID       string `form:"author_id"`
	AuthorUsername string `form:"author_username"`
	Timeframe      string `form:"timeframe"` // 最近 N 天（按入库时间）
	TagID          string `form:"tag_id"`
	Tag            string `form:"tag"` // 标签名
	Title          string `form:"title"`
}

// ListContentsReq 内容列表请求
type ListContentsReq struct {
	ContentFilterReq
	Page         string `form:"page"`
	ItemsPerPage string `form:"items_per_page"`
}

// AuthorInfo 作者信息（不含 big_metadata / secret_value）
type AuthorInfo struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	UniqueID  string    `json:"unique_id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Followers int64     `json:"followers"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContentInfo 内容信息 + 派生的互动指标（不含 big_metadata / secret_value）
type ContentInfo struct {
	ID              uint64     `json:"id"`
	Author          uint64     `json:"author"`
	UniqueID        string     `json:"unique_id"`
	URL             string     `json:"url"`
	Title           string     `json:"title"`
	LikeCount       int64      `json:"like_count"`
	CommentCount    int64      `json:"comment_count"`
	ViewCount       int64      `json:"view_count"`
	ShareCount      int64      `json:"share_count"`
	ThumbnailURL    *string    `json:"thumbnail_url"`
	Timestamp       *time.Time `json:"timestamp"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	EngagementRate  float64    `json:"engagement_rate"`
	TotalEngagement int64      `json:"total_engagement"`
	Tags            []string   `json:"tags"`
}

// ContentListItem 列表中的一项
type ContentListItem struct {
	Author  *AuthorInfo  `json:"author"`
	Content *ContentInfo `json:"content"`
}

// ContentStatsResp 筛选结果的汇总
type ContentStatsResp struct {
	TotalLikes          int64   `json:"total_likes"`
	TotalShares         int64   `json:"total_shares"`
	TotalViews          int64   `json:"total_views"`
	TotalComments       int64   `json:"total_comments"`
	TotalEngagement     int64   `json:"total_engagement"`
	TotalEngagementRate float64 `json:"total_engagement_rate"`
	TotalContents       int64   `json:"total_contents"`
	TotalFollowers      int64   `json:"total_followers"`
}
