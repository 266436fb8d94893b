package service

import (
	"CreatorHub/internal/api/dto"
	"CreatorHub/internal/pkg/consts"
	"CreatorHub/internal/pkg/mongo"
	"CreatorHub/internal/pkg/redis"
	"context"
	"fmt"
	log "log/slog"
	"math/rand"
	"time"

	"github.com/goccy/go-json"
)

type AnalyticsService interface {
	Get(ctx context.Context, userID string, period string) (*dto.AnalyticsDTO, error)
	Upload(ctx context.Context, userID string, req *dto.AnalyticsUploadDTO) (*dto.AnalyticsDTO, error)
	GenerateSample(ctx context.Context, userID string, period string) (*dto.AnalyticsDTO, error)
	Export(ctx context.Context, userID string, period string) (*dto.ExportReportDTO, error)
	Delete(ctx context.Context, userID string, period string) error
}

type analyticsServiceImpl struct {
	analyticsRepo mongo.AnalyticsRepo
}

func NewAnalyticsService(analyticsRepo mongo.AnalyticsRepo) AnalyticsService {
	return &analyticsServiceImpl{
		analyticsRepo: analyticsRepo,
	}
}

// Get 查询分析数据，首次访问懒创建演示数据
// 指标永远在读取时重新推导，缓存的是原始记录而不是指标。
func (s *analyticsServiceImpl) Get(ctx context.Context, userID string, period string) (*dto.AnalyticsDTO, error) {
	period = normalizePeriod(period)
	if !consts.PeriodSet[period] {
		return nil, ErrParamInvalid
	}

	record, err := s.fetchOrSeed(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	return toAnalyticsDTO(record, true), nil
}

// Upload 整体替换某个周期的分析数据
func (s *analyticsServiceImpl) Upload(ctx context.Context, userID string, req *dto.AnalyticsUploadDTO) (*dto.AnalyticsDTO, error) {
	period := normalizePeriod(req.Period)
	if !consts.PeriodSet[period] {
		return nil, ErrParamInvalid
	}
	if len(req.Followers) == 0 || len(req.Engagement) == 0 {
		return nil, ErrInvalidEngagement
	}

	engagement := make([]mongo.EngagementPost, 0, len(req.Engagement))
	for _, p := range req.Engagement {
		if p == nil || p.Post == nil || p.Likes == nil || p.Comments == nil {
			return nil, ErrInvalidEngagement
		}
		if *p.Likes < 0 || *p.Comments < 0 {
			return nil, ErrInvalidEngagement
		}
		date := time.Now()
		if p.Date != nil {
			date = *p.Date
		}
		engagement = append(engagement, mongo.EngagementPost{
			Post:     *p.Post,
			Likes:    *p.Likes,
			Comments: *p.Comments,
			Date:     date,
		})
	}

	record, err := s.analyticsRepo.Replace(ctx, userID, period, req.Followers, engagement, req.BestPostTime)
	if err != nil {
		log.Error("分析数据写入失败", "user_id", userID, "period", period, "err", err)
		return nil, UnExpectedError
	}

	s.invalidateCache(ctx, userID, period)
	return toAnalyticsDTO(record, true), nil
}

// GenerateSample 生成一段随机游走的示例数据并整体替换
func (s *analyticsServiceImpl) GenerateSample(ctx context.Context, userID string, period string) (*dto.AnalyticsDTO, error) {
	period = normalizePeriod(period)
	if !consts.PeriodSet[period] {
		return nil, ErrParamInvalid
	}

	days := 7
	if period == consts.Period30Days {
		days = 30
	}

	now := time.Now()
	followers := make([]int, 0, days)
	current := 1000 + rand.Intn(501)
	for i := 0; i < days; i++ {
		followers = append(followers, current)
		current += 10 + rand.Intn(51)
	}

	// 帖子日期倒排铺开，最后一条落在今天
	engagement := make([]mongo.EngagementPost, 0, 5)
	for i := 1; i <= 5; i++ {
		engagement = append(engagement, mongo.EngagementPost{
			Post:     i,
			Likes:    100 + rand.Intn(301),
			Comments: 5 + rand.Intn(51),
			Date:     now.AddDate(0, 0, -(5 - i)),
		})
	}

	bestPostTime := consts.BestPostTimes[rand.Intn(len(consts.BestPostTimes))]

	record, err := s.analyticsRepo.Replace(ctx, userID, period, followers, engagement, bestPostTime)
	if err != nil {
		log.Error("示例数据写入失败", "user_id", userID, "period", period, "err", err)
		return nil, UnExpectedError
	}

	s.invalidateCache(ctx, userID, period)
	return toAnalyticsDTO(record, true), nil
}

// Export 组装一份可下载的分析报告
func (s *analyticsServiceImpl) Export(ctx context.Context, userID string, period string) (*dto.ExportReportDTO, error) {
	period = normalizePeriod(period)
	if !consts.PeriodSet[period] {
		return nil, ErrParamInvalid
	}

	// 导出不做懒创建，没有数据就是 404
	record, err := s.fetch(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrAnalyticsNotFound
	}

	metrics := ComputeMetrics(record.Followers, record.Engagement)
	return &dto.ExportReportDTO{
		ReportGenerated: time.Now().Format(time.RFC3339),
		Period:          period,
		UserID:          userID,
		Summary: &dto.ExportSummaryDTO{
			CurrentFollowers:         metrics.CurrentFollowers,
			FollowerGrowth:           metrics.FollowerGrowth,
			FollowerGrowthPercentage: metrics.FollowerGrowthPercentage,
			TotalPosts:               len(record.Engagement),
			TotalLikes:               metrics.TotalLikes,
			TotalComments:            metrics.TotalComments,
			TotalEngagement:          metrics.TotalEngagement,
			AvgEngagementPerPost:     metrics.AvgEngagementPerPost,
			EngagementRate:           metrics.EngagementRate,
			BestPostTime:             record.BestPostTime,
		},
		Data: &dto.ExportDataDTO{
			Followers:  record.Followers,
			Engagement: toEngagementViews(record.Engagement),
		},
		Insights: buildInsights(record, metrics),
	}, nil
}

// Delete 删除某个周期的分析记录
func (s *analyticsServiceImpl) Delete(ctx context.Context, userID string, period string) error {
	period = normalizePeriod(period)
	if !consts.PeriodSet[period] {
		return ErrParamInvalid
	}

	deleted, err := s.analyticsRepo.Delete(ctx, userID, period)
	if err != nil {
		log.Error("分析数据删除失败", "user_id", userID, "period", period, "err", err)
		return UnExpectedError
	}
	if !deleted {
		return ErrAnalyticsNotFound
	}

	s.invalidateCache(ctx, userID, period)
	return nil
}

// fetch 读取记录，查不到返回 (nil, nil)
func (s *analyticsServiceImpl) fetch(ctx context.Context, userID string, period string) (*mongo.AnalyticsRecord, error) {
	if cached := s.getCache(ctx, userID, period); cached != nil {
		return cached, nil
	}

	record, err := s.analyticsRepo.FindByOwnerPeriod(ctx, userID, period)
	if err != nil {
		log.Error("分析数据查询失败", "user_id", userID, "period", period, "err", err)
		return nil, UnExpectedError
	}
	if record != nil {
		s.setCache(ctx, userID, period, record)
	}
	return record, nil
}

// fetchOrSeed 读取记录，不存在时落一份演示数据
func (s *analyticsServiceImpl) fetchOrSeed(ctx context.Context, userID string, period string) (*mongo.AnalyticsRecord, error) {
	record, err := s.fetch(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	if record != nil {
		return record, nil
	}

	followers, engagement, bestPostTime := mongo.DefaultAnalyticsData()
	record, err = s.analyticsRepo.Replace(ctx, userID, period, followers, engagement, bestPostTime)
	if err != nil {
		log.Error("演示数据初始化失败", "user_id", userID, "period", period, "err", err)
		return nil, UnExpectedError
	}

	s.setCache(ctx, userID, period, record)
	return record, nil
}

func (s *analyticsServiceImpl) cacheKey(userID string, period string) string {
	return consts.AnalyticsCacheKey + userID + ":" + period
}

func (s *analyticsServiceImpl) getCache(ctx context.Context, userID string, period string) *mongo.AnalyticsRecord {
	value, err := redis.GetValue(ctx, s.cacheKey(userID, period))
	if err != nil || value == "" {
		return nil
	}
	var record mongo.AnalyticsRecord
	if err = json.Unmarshal([]byte(value), &record); err != nil {
		return nil
	}
	return &record
}

// setCache 缓存到当天结束，提前5分钟过期
func (s *analyticsServiceImpl) setCache(ctx context.Context, userID string, period string, record *mongo.AnalyticsRecord) {
	data, err := json.Marshal(record)
	if err != nil {
		return
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	expiration := time.Until(midnight) - time.Minute*5
	if expiration < 0 {
		return
	}

	_ = redis.SetWithExpiration(ctx, s.cacheKey(userID, period), data, expiration)
}

func (s *analyticsServiceImpl) invalidateCache(ctx context.Context, userID string, period string) {
	_ = redis.DeleteKey(ctx, s.cacheKey(userID, period))
}

func normalizePeriod(period string) string {
	if period == "" {
		return consts.Period7Days
	}
	return period
}

// buildInsights 五条文字洞察
func buildInsights(record *mongo.AnalyticsRecord, metrics *dto.MetricsDTO) []string {
	bestInteractions := 0
	for _, p := range record.Engagement {
		if p.Likes+p.Comments > bestInteractions {
			bestInteractions = p.Likes + p.Comments
		}
	}

	var growthPct float64
	if metrics.PreviousFollowers > 0 {
		growthPct = float64(metrics.FollowerGrowth) / float64(metrics.PreviousFollowers) * 100
	}

	return []string{
		fmt.Sprintf("Your follower count grew by %d followers (%.1f%%)", metrics.FollowerGrowth, growthPct),
		fmt.Sprintf("Your average engagement per post is %d interactions", metrics.AvgEngagementPerPost),
		fmt.Sprintf("Your best performing post had %d total interactions", bestInteractions),
		fmt.Sprintf("Your engagement rate is %.2f%%", metrics.EngagementRate),
		fmt.Sprintf("Best time to post: %s", record.BestPostTime),
	}
}

func toEngagementViews(posts []mongo.EngagementPost) []*dto.EngagementPostViewDTO {
	views := make([]*dto.EngagementPostViewDTO, 0, len(posts))
	for _, p := range posts {
		views = append(views, &dto.EngagementPostViewDTO{
			Post:     p.Post,
			Likes:    p.Likes,
			Comments: p.Comments,
			Date:     p.Date.Format(time.RFC3339),
		})
	}
	return views
}

func toAnalyticsDTO(record *mongo.AnalyticsRecord, withMetrics bool) *dto.AnalyticsDTO {
	res := &dto.AnalyticsDTO{
		ID:           record.ID.Hex(),
		Followers:    record.Followers,
		Engagement:   toEngagementViews(record.Engagement),
		BestPostTime: record.BestPostTime,
		Period:       record.Period,
	}
	if !record.CreatedAt.IsZero() {
		res.CreatedAt = record.CreatedAt.Format(time.RFC3339)
	}
	if !record.UpdatedAt.IsZero() {
		res.UpdatedAt = record.UpdatedAt.Format(time.RFC3339)
	}
	if withMetrics {
		res.Metrics = ComputeMetrics(record.Followers, record.Engagement)
	}
	return res
}
