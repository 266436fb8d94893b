package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CreatorHub/internal/pkg/mongo"
)

func TestComputeMetricsScenario(t *testing.T) {
	followers := []int{1000, 1050}
	engagement := []mongo.EngagementPost{
		{Post: 1, Likes: 100, Comments: 10, Date: time.Now()},
	}

	m := ComputeMetrics(followers, engagement)
	require.NotNil(t, m)

	assert.Equal(t, 100, m.TotalLikes)
	assert.Equal(t, 10, m.TotalComments)
	assert.Equal(t, 110, m.TotalEngagement)
	assert.Equal(t, 110, m.AvgEngagementPerPost)
	assert.Equal(t, 1050, m.CurrentFollowers)
	assert.Equal(t, 1000, m.PreviousFollowers)
	assert.Equal(t, 50, m.FollowerGrowth)
	assert.Equal(t, 5.00, m.FollowerGrowthPercentage)
	assert.Equal(t, 10.48, m.EngagementRate)
}

func TestComputeMetricsEngagementRateFromTotals(t *testing.T) {
	// 互动率从未取整的总量推导，不走取整后的平均值
	followers := []int{1000, 1050}
	engagement := []mongo.EngagementPost{
		{Post: 1, Likes: 30, Comments: 5},
		{Post: 2, Likes: 40, Comments: 5},
		{Post: 3, Likes: 25, Comments: 5},
	}

	m := ComputeMetrics(followers, engagement)
	assert.Equal(t, 110, m.TotalEngagement)
	assert.Equal(t, 37, m.AvgEngagementPerPost)
	assert.Equal(t, 3.49, m.EngagementRate)
}

func TestComputeMetricsIdempotent(t *testing.T) {
	followers := []int{1200, 1250, 1280, 1295, 1330, 1360, 1400}
	engagement := []mongo.EngagementPost{
		{Post: 1, Likes: 320, Comments: 25},
		{Post: 2, Likes: 400, Comments: 40},
		{Post: 3, Likes: 290, Comments: 10},
	}

	first := ComputeMetrics(followers, engagement)
	second := ComputeMetrics(followers, engagement)
	assert.Equal(t, first, second)

	// 输入没有被改动
	assert.Equal(t, []int{1200, 1250, 1280, 1295, 1330, 1360, 1400}, followers)
}

func TestComputeMetricsGrowthIdentity(t *testing.T) {
	cases := [][]int{
		{100, 200},
		{500, 400},
		{1000, 1000},
		{1, 2, 3, 4, 5},
	}

	for _, followers := range cases {
		m := ComputeMetrics(followers, nil)
		assert.Equal(t, m.CurrentFollowers-m.PreviousFollowers, m.FollowerGrowth)
	}
}

func TestComputeMetricsZeroDenominator(t *testing.T) {
	// 起始粉丝为 0，百分比不得出现 NaN/Inf
	m := ComputeMetrics([]int{0, 100}, []mongo.EngagementPost{{Post: 1, Likes: 10, Comments: 5}})
	assert.Equal(t, float64(0), m.FollowerGrowthPercentage)
	assert.Equal(t, 100, m.FollowerGrowth)

	// 当前粉丝为 0
	m = ComputeMetrics([]int{100, 0}, []mongo.EngagementPost{{Post: 1, Likes: 10, Comments: 5}})
	assert.Equal(t, float64(0), m.EngagementRate)
}

func TestComputeMetricsEmptyInput(t *testing.T) {
	m := ComputeMetrics(nil, nil)
	require.NotNil(t, m)

	assert.Equal(t, 0, m.TotalEngagement)
	assert.Equal(t, 0, m.AvgEngagementPerPost)
	assert.Equal(t, 0, m.CurrentFollowers)
	assert.Equal(t, float64(0), m.FollowerGrowthPercentage)
	assert.Equal(t, float64(0), m.EngagementRate)
}
