package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"CreatorHub/internal/api/dto"
	"CreatorHub/internal/pkg/consts"
	"CreatorHub/internal/pkg/mongo"
)

type fakeAnalyticsRepo struct {
	records map[string]*mongo.AnalyticsRecord
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{records: make(map[string]*mongo.AnalyticsRecord)}
}

func (f *fakeAnalyticsRepo) key(ownerID, period string) string {
	return ownerID + "|" + period
}

func (f *fakeAnalyticsRepo) FindByOwnerPeriod(_ context.Context, ownerID, period string) (*mongo.AnalyticsRecord, error) {
	record, ok := f.records[f.key(ownerID, period)]
	if !ok {
		return nil, nil
	}
	return record, nil
}

func (f *fakeAnalyticsRepo) Replace(_ context.Context, ownerID, period string, followers []int, engagement []mongo.EngagementPost, bestPostTime string) (*mongo.AnalyticsRecord, error) {
	now := time.Now()
	record, ok := f.records[f.key(ownerID, period)]
	if !ok {
		record = &mongo.AnalyticsRecord{
			ID:           primitive.NewObjectID(),
			OwnerID:      ownerID,
			Period:       period,
			BestPostTime: consts.DefaultBestPostTime,
			CreatedAt:    now,
		}
		f.records[f.key(ownerID, period)] = record
	}
	record.Followers = followers
	record.Engagement = engagement
	record.UpdatedAt = now
	if bestPostTime != "" {
		record.BestPostTime = bestPostTime
	}
	return record, nil
}

func (f *fakeAnalyticsRepo) Delete(_ context.Context, ownerID, period string) (bool, error) {
	if _, ok := f.records[f.key(ownerID, period)]; !ok {
		return false, nil
	}
	delete(f.records, f.key(ownerID, period))
	return true, nil
}

func (f *fakeAnalyticsRepo) All(_ context.Context) ([]*mongo.AnalyticsRecord, error) {
	records := make([]*mongo.AnalyticsRecord, 0, len(f.records))
	for _, record := range f.records {
		records = append(records, record)
	}
	return records, nil
}

func (f *fakeAnalyticsRepo) UpdateBestPostTime(_ context.Context, id primitive.ObjectID, bestPostTime string) error {
	for _, record := range f.records {
		if record.ID == id {
			record.BestPostTime = bestPostTime
		}
	}
	return nil
}

func intPtr(v int) *int { return &v }

func TestAnalyticsGetLazyDefault(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := NewAnalyticsService(repo)
	ctx := context.Background()

	res, err := svc.Get(ctx, "u1", "")
	require.NoError(t, err)

	// 首次访问落了一份演示数据
	assert.Equal(t, consts.Period7Days, res.Period)
	assert.Equal(t, []int{1200, 1250, 1280, 1295, 1330, 1360, 1400}, res.Followers)
	assert.Len(t, res.Engagement, 5)
	assert.Equal(t, consts.DefaultBestPostTime, res.BestPostTime)
	require.NotNil(t, res.Metrics)
	assert.Equal(t, 1400, res.Metrics.CurrentFollowers)

	// 已持久化
	record, err := repo.FindByOwnerPeriod(ctx, "u1", consts.Period7Days)
	require.NoError(t, err)
	require.NotNil(t, record)
}

func TestAnalyticsGetRejectsUnknownPeriod(t *testing.T) {
	svc := NewAnalyticsService(newFakeAnalyticsRepo())
	_, err := svc.Get(context.Background(), "u1", "14days")
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestAnalyticsUploadReplacesWholesale(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := NewAnalyticsService(repo)
	ctx := context.Background()

	_, err := svc.Get(ctx, "u1", consts.Period7Days)
	require.NoError(t, err)

	res, err := svc.Upload(ctx, "u1", &dto.AnalyticsUploadDTO{
		Followers: []int{10, 20},
		Engagement: []*dto.EngagementPostDTO{
			{Post: intPtr(1), Likes: intPtr(5), Comments: intPtr(2)},
		},
		Period: consts.Period7Days,
	})
	require.NoError(t, err)

	// 旧数据整体被替换，而不是合并
	assert.Equal(t, []int{10, 20}, res.Followers)
	require.Len(t, res.Engagement, 1)
	assert.Equal(t, 5, res.Engagement[0].Likes)
	// 未提供时保留原有的推荐发布时间
	assert.Equal(t, consts.DefaultBestPostTime, res.BestPostTime)
	// 未提供日期时补当前时间
	assert.NotEmpty(t, res.Engagement[0].Date)
}

func TestAnalyticsUploadValidation(t *testing.T) {
	svc := NewAnalyticsService(newFakeAnalyticsRepo())
	ctx := context.Background()

	_, err := svc.Upload(ctx, "u1", &dto.AnalyticsUploadDTO{
		Followers:  []int{},
		Engagement: []*dto.EngagementPostDTO{{Post: intPtr(1), Likes: intPtr(1), Comments: intPtr(1)}},
	})
	assert.ErrorIs(t, err, ErrInvalidEngagement)

	_, err = svc.Upload(ctx, "u1", &dto.AnalyticsUploadDTO{
		Followers:  []int{10},
		Engagement: []*dto.EngagementPostDTO{},
	})
	assert.ErrorIs(t, err, ErrInvalidEngagement)

	_, err = svc.Upload(ctx, "u1", &dto.AnalyticsUploadDTO{
		Followers:  []int{10},
		Engagement: []*dto.EngagementPostDTO{{Post: intPtr(1), Likes: nil, Comments: intPtr(1)}},
	})
	assert.ErrorIs(t, err, ErrInvalidEngagement)

	_, err = svc.Upload(ctx, "u1", &dto.AnalyticsUploadDTO{
		Followers:  []int{10},
		Engagement: []*dto.EngagementPostDTO{{Post: intPtr(1), Likes: intPtr(-3), Comments: intPtr(1)}},
	})
	assert.ErrorIs(t, err, ErrInvalidEngagement)

	_, err = svc.Upload(ctx, "u1", &dto.AnalyticsUploadDTO{
		Followers:  []int{10},
		Engagement: []*dto.EngagementPostDTO{{Post: intPtr(1), Likes: intPtr(1), Comments: intPtr(1)}},
		Period:     "forever",
	})
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestAnalyticsGenerateSampleShape(t *testing.T) {
	svc := NewAnalyticsService(newFakeAnalyticsRepo())
	ctx := context.Background()

	res, err := svc.GenerateSample(ctx, "u1", consts.Period30Days)
	require.NoError(t, err)

	assert.Len(t, res.Followers, 30)
	assert.Len(t, res.Engagement, 5)

	// 随机游走单调不减
	for i := 1; i < len(res.Followers); i++ {
		assert.GreaterOrEqual(t, res.Followers[i], res.Followers[i-1])
	}
	assert.GreaterOrEqual(t, res.Followers[0], 1000)
	assert.LessOrEqual(t, res.Followers[0], 1500)

	for _, p := range res.Engagement {
		assert.GreaterOrEqual(t, p.Likes, 100)
		assert.LessOrEqual(t, p.Likes, 400)
		assert.GreaterOrEqual(t, p.Comments, 5)
		assert.LessOrEqual(t, p.Comments, 55)
	}

	res, err = svc.GenerateSample(ctx, "u1", consts.Period7Days)
	require.NoError(t, err)
	assert.Len(t, res.Followers, 7)

	// 日期序列以今天收尾
	last, err := time.Parse(time.RFC3339, res.Engagement[4].Date)
	require.NoError(t, err)
	now := time.Now()
	assert.Equal(t, now.Year(), last.Year())
	assert.Equal(t, now.YearDay(), last.YearDay())
}

func TestAnalyticsExportReport(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := NewAnalyticsService(repo)
	ctx := context.Background()

	// 没有数据时导出是 404，不会偷偷落库
	_, err := svc.Export(ctx, "u1", consts.Period7Days)
	assert.ErrorIs(t, err, ErrAnalyticsNotFound)
	assert.Empty(t, repo.records)

	_, err = svc.Get(ctx, "u1", consts.Period7Days)
	require.NoError(t, err)

	report, err := svc.Export(ctx, "u1", consts.Period7Days)
	require.NoError(t, err)

	assert.Equal(t, consts.Period7Days, report.Period)
	assert.Equal(t, "u1", report.UserID)
	assert.NotEmpty(t, report.ReportGenerated)
	require.NotNil(t, report.Summary)
	assert.Equal(t, 1400, report.Summary.CurrentFollowers)
	assert.Equal(t, 5, report.Summary.TotalPosts)
	require.NotNil(t, report.Data)
	assert.Len(t, report.Data.Followers, 7)
	require.Len(t, report.Insights, 5)

	// 最佳帖子 450+50 次互动
	assert.Contains(t, report.Insights[2], "500 total interactions")
	assert.Contains(t, report.Insights[0], "grew by 200 followers")
	assert.Contains(t, report.Insights[4], "Best time to post:")
}

func TestAnalyticsDelete(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := NewAnalyticsService(repo)
	ctx := context.Background()

	_, err := svc.Get(ctx, "u1", consts.Period7Days)
	require.NoError(t, err)

	err = svc.Delete(ctx, "u1", consts.Period7Days)
	require.NoError(t, err)

	err = svc.Delete(ctx, "u1", consts.Period7Days)
	assert.ErrorIs(t, err, ErrAnalyticsNotFound)
}
