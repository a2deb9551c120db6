package service

import (
	"Engage/dao"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngagement(t *testing.T) {
	assert.EqualValues(t, 17, TotalEngagement(10, 5, 2))
	assert.InDelta(t, 0.17, EngagementRate(17, 100), 1e-12)
	assert.Zero(t, EngagementRate(17, 0))
	assert.Zero(t, EngagementRate(0, 0))
	// 互动可以超过播放
	assert.InDelta(t, 2.0, EngagementRate(20, 10), 1e-12)
}

func TestBuildStats(t *testing.T) {
	// 总互动 / 总播放，不是单条互动率的平均
	stats := BuildStats(&dao.ContentAggregate{
		TotalLikes:     30,
		TotalComments:  0,
		TotalShares:    0,
		TotalViews:     1000,
		TotalContents:  2,
		TotalFollowers: 8,
	})
	assert.EqualValues(t, 30, stats.TotalEngagement)
	assert.InDelta(t, 0.03, stats.TotalEngagementRate, 1e-12)
	assert.EqualValues(t, 2, stats.TotalContents)
	assert.EqualValues(t, 8, stats.TotalFollowers)

	empty := BuildStats(&dao.ContentAggregate{TotalContents: 1})
	assert.Zero(t, empty.TotalEngagementRate)
}
