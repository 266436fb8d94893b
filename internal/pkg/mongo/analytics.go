package mongo

import (
	"CreatorHub/internal/pkg/consts"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalyticsRecord 单个用户在某个周期内的原始分析数据
// (owner_id, period) 维度唯一，上传时整体替换 followers/engagement。
type AnalyticsRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID      string             `bson:"owner_id" json:"-"`
	Period       string             `bson:"period" json:"period"`
	Followers    []int              `bson:"followers" json:"followers"`
	Engagement   []EngagementPost   `bson:"engagement" json:"engagement"`
	BestPostTime string             `bson:"best_post_time" json:"bestPostTime"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// EngagementPost 单条帖子的互动数据
type EngagementPost struct {
	Post     int       `bson:"post" json:"post"`
	Likes    int       `bson:"likes" json:"likes"`
	Comments int       `bson:"comments" json:"comments"`
	Date     time.Time `bson:"date" json:"date"`
}

// DefaultAnalyticsData 首次读取时懒创建的演示数据
func DefaultAnalyticsData() ([]int, []EngagementPost, string) {
	now := time.Now()
	followers := []int{1200, 1250, 1280, 1295, 1330, 1360, 1400}
	engagement := []EngagementPost{
		{Post: 1, Likes: 320, Comments: 25, Date: now.AddDate(0, 0, -6)},
		{Post: 2, Likes: 400, Comments: 40, Date: now.AddDate(0, 0, -5)},
		{Post: 3, Likes: 290, Comments: 10, Date: now.AddDate(0, 0, -4)},
		{Post: 4, Likes: 380, Comments: 35, Date: now.AddDate(0, 0, -3)},
		{Post: 5, Likes: 450, Comments: 50, Date: now.AddDate(0, 0, -2)},
	}
	return followers, engagement, consts.DefaultBestPostTime
}
