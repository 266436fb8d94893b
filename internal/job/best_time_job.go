package job

import (
	"CreatorHub/internal/pkg/consts"
	"CreatorHub/internal/pkg/logger"
	"CreatorHub/internal/pkg/mongo"
	"CreatorHub/internal/pkg/redis"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// BestTimeJob 每天根据互动数据回写各用户的推荐发布时间
// 取互动量最高的帖子所在星期几对应的时段。
type BestTimeJob struct {
	analyticsRepo mongo.AnalyticsRepo
}

func NewBestTimeJob(analyticsRepo mongo.AnalyticsRepo) *BestTimeJob {
	return &BestTimeJob{
		analyticsRepo: analyticsRepo,
	}
}

func (s *BestTimeJob) Run() {
	traceID := "job-best-time-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	lockUUID := uuid.NewString()
	ok, err := redis.TryLock(ctx, consts.BestTimeJobLock, lockUUID, 10*time.Minute, 0)
	if err != nil || !ok {
		return
	}
	defer redis.UnLock(ctx, consts.BestTimeJobLock, lockUUID)

	records, err := s.analyticsRepo.All(ctx)
	if err != nil {
		log.ErrorContext(ctx, "拉取分析记录失败", "err", err)
		return
	}

	log.InfoContext(ctx, "BestTimeJob processing", "record_count", len(records))

	updated := 0
	for _, record := range records {
		bestPostTime := deriveBestPostTime(record.Engagement)
		if bestPostTime == "" || bestPostTime == record.BestPostTime {
			continue
		}
		if err = s.analyticsRepo.UpdateBestPostTime(ctx, record.ID, bestPostTime); err != nil {
			log.ErrorContext(ctx, "回写推荐发布时间失败", "record_id", record.ID.Hex(), "err", err)
			continue
		}
		updated++
	}

	if updated > 0 {
		log.InfoContext(ctx, "BestTimeJob finished", "updated_count", updated)
	}
}

// deriveBestPostTime 互动量最高的帖子决定推荐时段
func deriveBestPostTime(posts []mongo.EngagementPost) string {
	best := -1
	var bestDate time.Time
	for _, p := range posts {
		if p.Date.IsZero() {
			continue
		}
		if score := p.Likes + p.Comments; score > best {
			best = score
			bestDate = p.Date
		}
	}
	if best < 0 {
		return ""
	}

	// time.Weekday 周日为 0，时段表从周一开始
	idx := (int(bestDate.Weekday()) + 6) % 7
	return consts.BestPostTimes[idx]
}
