package mongo

import (
	"CreatorHub/internal/api/config"
	"CreatorHub/internal/pkg/logger"
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongo 建立连接并返回 Database 引用，同时初始化索引
func InitMongo(cfg config.MongoConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 建立连接
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URL).
		SetMonitor(logger.NewMongoMonitor()),
	)
	if err != nil {
		return nil, err
	}

	// 检查连通性
	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(cfg.Database)

	if err = ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	log.Info("MongoDB initialized successfully", "db", cfg.Database)
	return db, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	// 内容库按归属者 + 创建时间倒序读取
	_, err := db.Collection("content_ideas").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
	if err != nil {
		return err
	}

	// 每个 (owner, period) 只允许一条分析记录
	_, err = db.Collection("analytics").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner_id", Value: 1},
			{Key: "period", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}
