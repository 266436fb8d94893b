package service

import (
	"math"

	"CreatorHub/internal/api/dto"
	"CreatorHub/internal/pkg/mongo"
)

// ComputeMetrics 根据原始 followers/engagement 推导指标
// 纯函数，不读写任何存储，同样输入永远得到同样输出。
func ComputeMetrics(followers []int, engagement []mongo.EngagementPost) *dto.MetricsDTO {
	m := &dto.MetricsDTO{}

	for _, p := range engagement {
		m.TotalLikes += p.Likes
		m.TotalComments += p.Comments
	}
	m.TotalEngagement = m.TotalLikes + m.TotalComments

	if n := len(engagement); n > 0 {
		m.AvgEngagementPerPost = int(math.Round(float64(m.TotalEngagement) / float64(n)))
	}

	if len(followers) > 0 {
		m.CurrentFollowers = followers[len(followers)-1]
		m.PreviousFollowers = followers[0]
	}
	m.FollowerGrowth = m.CurrentFollowers - m.PreviousFollowers

	// 分母为 0 时百分比钳为 0，避免 NaN/Inf 漏到响应里
	if m.PreviousFollowers > 0 {
		m.FollowerGrowthPercentage = round2(float64(m.FollowerGrowth) / float64(m.PreviousFollowers) * 100)
	}
	if m.CurrentFollowers > 0 && len(engagement) > 0 {
		m.EngagementRate = round2(float64(m.TotalEngagement) / float64(m.CurrentFollowers*len(engagement)) * 100)
	}
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
