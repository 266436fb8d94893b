package mongo

import (
	"context"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContentQuery 内容库查询条件
type ContentQuery struct {
	Page   int
	Limit  int
	Niche  string
	Search string
}

type ContentRepo interface {
	Create(ctx context.Context, idea *ContentIdea) error
	FindPage(ctx context.Context, ownerID string, q ContentQuery) ([]*ContentIdea, int64, error)
	FindByID(ctx context.Context, ownerID string, id primitive.ObjectID) (*ContentIdea, error)
	Delete(ctx context.Context, ownerID string, id primitive.ObjectID) error
}

type contentRepoImpl struct {
	col *mongo.Collection
}

func NewContentRepo(db *mongo.Database) ContentRepo {
	return &contentRepoImpl{
		col: db.Collection("content_ideas"),
	}
}

// Create 写入一条新内容，回填生成的 ObjectID
func (s *contentRepoImpl) Create(ctx context.Context, idea *ContentIdea) error {
	if idea.CreatedAt.IsZero() {
		idea.CreatedAt = time.Now()
	}
	result, err := s.col.InsertOne(ctx, idea)
	if err != nil {
		return errors.Wrap(err, "insert content idea")
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		idea.ID = oid
	}
	return nil
}

// FindPage 分页查询内容库 (按创建时间倒序)
// 过滤条件永远带 owner_id，租户之间互不可见。
func (s *contentRepoImpl) FindPage(ctx context.Context, ownerID string, q ContentQuery) ([]*ContentIdea, int64, error) {
	filter := bson.M{"owner_id": ownerID}

	if q.Niche != "" {
		filter["niche"] = q.Niche
	}

	// 大小写不敏感的子串匹配，覆盖四个文本字段
	if q.Search != "" {
		pattern := regexp.QuoteMeta(q.Search)
		regex := bson.M{"$regex": pattern, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"topic": regex},
			bson.M{"niche": regex},
			bson.M{"reel_idea": regex},
			bson.M{"caption": regex},
		}
	}

	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "count content ideas")
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(q.Page-1) * int64(q.Limit)).
		SetLimit(int64(q.Limit))

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, errors.Wrap(err, "find content ideas")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	items := make([]*ContentIdea, 0)
	if err = cursor.All(ctx, &items); err != nil {
		return nil, 0, errors.Wrap(err, "decode content ideas")
	}

	return items, total, nil
}

// FindByID 按 id + owner 精确查询，查不到返回 mongo.ErrNoDocuments
func (s *contentRepoImpl) FindByID(ctx context.Context, ownerID string, id primitive.ObjectID) (*ContentIdea, error) {
	var idea ContentIdea
	filter := bson.M{"_id": id, "owner_id": ownerID}
	if err := s.col.FindOne(ctx, filter).Decode(&idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

// Delete 只允许归属者删除自己的记录
func (s *contentRepoImpl) Delete(ctx context.Context, ownerID string, id primitive.ObjectID) error {
	filter := bson.M{"_id": id, "owner_id": ownerID}
	result, err := s.col.DeleteOne(ctx, filter)
	if err != nil {
		return errors.Wrap(err, "delete content idea")
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
