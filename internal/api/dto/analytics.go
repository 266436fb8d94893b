package dto

import "time"

// AnalyticsQueryDTO 分析数据查询参数
type AnalyticsQueryDTO struct {
	Period string `form:"period,default=7days"`
}

// EngagementPostDTO 上传的单条帖子互动数据
// 三个计数字段用指针，缺失与 0 区分开
type EngagementPostDTO struct {
	Post     *int       `json:"post" binding:"required"`
	Likes    *int       `json:"likes" binding:"required"`
	Comments *int       `json:"comments" binding:"required"`
	Date     *time.Time `json:"date"`
}

// AnalyticsUploadDTO 分析数据上传请求
type AnalyticsUploadDTO struct {
	Followers    []int                `json:"followers" binding:"required"`
	Engagement   []*EngagementPostDTO `json:"engagement" binding:"required,dive,required"`
	BestPostTime string               `json:"bestPostTime"`
	Period       string               `json:"period"`
}

// GenerateSampleDTO 示例数据生成请求
type GenerateSampleDTO struct {
	Period string `json:"period"`
}

// MetricsDTO 每次读取时重新推导的指标，永不落库
type MetricsDTO struct {
	TotalLikes               int     `json:"totalLikes"`
	TotalComments            int     `json:"totalComments"`
	TotalEngagement          int     `json:"totalEngagement"`
	AvgEngagementPerPost     int     `json:"avgEngagementPerPost"`
	CurrentFollowers         int     `json:"currentFollowers"`
	PreviousFollowers        int     `json:"previousFollowers"`
	FollowerGrowth           int     `json:"followerGrowth"`
	FollowerGrowthPercentage float64 `json:"followerGrowthPercentage"`
	EngagementRate           float64 `json:"engagementRate"`
}

// EngagementPostViewDTO 返回给前端的互动条目
type EngagementPostViewDTO struct {
	Post     int    `json:"post"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Date     string `json:"date"`
}

// AnalyticsDTO 分析记录返回对象
type AnalyticsDTO struct {
	ID           string                   `json:"id"`
	Followers    []int                    `json:"followers"`
	Engagement   []*EngagementPostViewDTO `json:"engagement"`
	BestPostTime string                   `json:"bestPostTime"`
	Period       string                   `json:"period"`
	Metrics      *MetricsDTO              `json:"metrics,omitempty"`
	CreatedAt    string                   `json:"createdAt,omitempty"`
	UpdatedAt    string                   `json:"updatedAt,omitempty"`
}

// AnalyticsExportQueryDTO 报告导出查询参数
type AnalyticsExportQueryDTO struct {
	UserID string `form:"userId,default=anonymous"`
	Period string `form:"period,default=7days"`
	Format string `form:"format,default=json"`
}

// AnalyticsDeleteQueryDTO 删除分析记录查询参数
type AnalyticsDeleteQueryDTO struct {
	UserID string `form:"userId,default=anonymous"`
	Period string `form:"period,default=7days"`
}

// ExportSummaryDTO 导出报告的汇总段
type ExportSummaryDTO struct {
	CurrentFollowers         int     `json:"currentFollowers"`
	FollowerGrowth           int     `json:"followerGrowth"`
	FollowerGrowthPercentage float64 `json:"followerGrowthPercentage"`
	TotalPosts               int     `json:"totalPosts"`
	TotalLikes               int     `json:"totalLikes"`
	TotalComments            int     `json:"totalComments"`
	TotalEngagement          int     `json:"totalEngagement"`
	AvgEngagementPerPost     int     `json:"avgEngagementPerPost"`
	EngagementRate           float64 `json:"engagementRate"`
	BestPostTime             string  `json:"bestPostTime"`
}

// ExportDataDTO 导出报告携带的原始数据
type ExportDataDTO struct {
	Followers  []int                    `json:"followers"`
	Engagement []*EngagementPostViewDTO `json:"engagement"`
}

// ExportReportDTO 可下载的分析报告
type ExportReportDTO struct {
	ReportGenerated string            `json:"reportGenerated"`
	Period          string            `json:"period"`
	UserID          string            `json:"userId"`
	Summary         *ExportSummaryDTO `json:"summary"`
	Data            *ExportDataDTO    `json:"data"`
	Insights        []string          `json:"insights"`
}
