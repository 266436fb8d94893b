package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentIdea 内容库条目，生成成功后写入，之后只读（可删除）
type ContentIdea struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID   string             `bson:"owner_id" json:"-"` // 托管身份服务下发的用户标识
	Topic     string             `bson:"topic" json:"topic"`
	Niche     string             `bson:"niche" json:"niche"`
	ReelIdea  string             `bson:"reel_idea" json:"reelIdea"`
	Caption   string             `bson:"caption" json:"caption"`
	Hashtags  []string           `bson:"hashtags" json:"hashtags"`
	Hook      string             `bson:"hook" json:"hook"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
