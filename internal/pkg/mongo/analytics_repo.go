package mongo

import (
	"CreatorHub/internal/pkg/consts"
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AnalyticsRepo interface {
	FindByOwnerPeriod(ctx context.Context, ownerID, period string) (*AnalyticsRecord, error)
	Replace(ctx context.Context, ownerID, period string, followers []int, engagement []EngagementPost, bestPostTime string) (*AnalyticsRecord, error)
	Delete(ctx context.Context, ownerID, period string) (bool, error)
	All(ctx context.Context) ([]*AnalyticsRecord, error)
	UpdateBestPostTime(ctx context.Context, id primitive.ObjectID, bestPostTime string) error
}

type analyticsRepoImpl struct {
	col *mongo.Collection
}

func NewAnalyticsRepo(db *mongo.Database) AnalyticsRepo {
	return &analyticsRepoImpl{
		col: db.Collection("analytics"),
	}
}

// FindByOwnerPeriod 查不到时返回 (nil, nil)，由上层决定懒创建
func (s *analyticsRepoImpl) FindByOwnerPeriod(ctx context.Context, ownerID, period string) (*AnalyticsRecord, error) {
	var record AnalyticsRecord
	filter := bson.M{"owner_id": ownerID, "period": period}
	err := s.col.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find analytics record")
	}
	return &record, nil
}

// Replace 按 (owner, period) 整体替换数据，不存在则创建
// bestPostTime 为空时保留已有值，创建场景落默认值。
func (s *analyticsRepoImpl) Replace(ctx context.Context, ownerID, period string, followers []int, engagement []EngagementPost, bestPostTime string) (*AnalyticsRecord, error) {
	now := time.Now()
	filter := bson.M{"owner_id": ownerID, "period": period}

	set := bson.M{
		"followers":  followers,
		"engagement": engagement,
		"updated_at": now,
	}
	setOnInsert := bson.M{
		"owner_id":   ownerID,
		"period":     period,
		"created_at": now,
	}
	if bestPostTime != "" {
		set["best_post_time"] = bestPostTime
	} else {
		setOnInsert["best_post_time"] = consts.DefaultBestPostTime
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var record AnalyticsRecord
	err := s.col.FindOneAndUpdate(ctx, filter, bson.M{
		"$set":         set,
		"$setOnInsert": setOnInsert,
	}, opts).Decode(&record)
	if err != nil {
		return nil, errors.Wrap(err, "upsert analytics record")
	}
	return &record, nil
}

// Delete 删除一条记录，返回是否真的删除了
func (s *analyticsRepoImpl) Delete(ctx context.Context, ownerID, period string) (bool, error) {
	filter := bson.M{"owner_id": ownerID, "period": period}
	result, err := s.col.DeleteOne(ctx, filter)
	if err != nil {
		return false, errors.Wrap(err, "delete analytics record")
	}
	return result.DeletedCount > 0, nil
}

// All 拉取全部记录，供定时任务遍历
func (s *analyticsRepoImpl) All(ctx context.Context) ([]*AnalyticsRecord, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "scan analytics records")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	records := make([]*AnalyticsRecord, 0)
	if err = cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "decode analytics records")
	}
	return records, nil
}

// UpdateBestPostTime 定时任务回写推荐发布时间
func (s *analyticsRepoImpl) UpdateBestPostTime(ctx context.Context, id primitive.ObjectID, bestPostTime string) error {
	update := bson.M{"$set": bson.M{"best_post_time": bestPostTime}}
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
