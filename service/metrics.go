package service

import (
	"Engage/dao"
	"Engage/types"
)

// TotalEngagement 互动数 = 点赞 + 评论 + 分享，播放量只代表触达，不计入
func TotalEngagement(likes, comments, shares int64) int64 {
	return likes + comments + shares
}

// EngagementRate 互动率，播放量为 0 时定义为 0
func EngagementRate(engagement, views int64) float64 {
	if views <= 0 {
		return 0
	}
	return float64(engagement) / float64(views)
}

// BuildStats 先聚合再算率：总互动 / 总播放，而不是各条互动率的平均
func BuildStats(agg *dao.ContentAggregate) *types.ContentStatsResp {
	engagement := TotalEngagement(agg.TotalLikes, agg.TotalComments, agg.TotalShares)
	return &types.ContentStatsResp{
		TotalLikes:          agg.TotalLikes,
		TotalShares:         agg.TotalShares,
		TotalViews:          agg.TotalViews,
		TotalComments:       agg.TotalComments,
		TotalEngagement:     engagement,
		TotalEngagementRate: EngagementRate(engagement, agg.TotalViews),
		TotalContents:       agg.TotalContents,
		TotalFollowers:      agg.TotalFollowers,
	}
}
