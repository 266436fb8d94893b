package consts

// Niches 固定的内容领域列表，生成接口与内容库筛选都以此为准
var Niches = []string{
	"fashion",
	"fitness",
	"finance",
	"lifestyle",
	"technology",
	"food",
	"travel",
	"beauty",
	"education",
	"entertainment",
}

// NicheSet 用于 O(1) 校验
var NicheSet = func() map[string]bool {
	set := make(map[string]bool, len(Niches))
	for _, n := range Niches {
		set[n] = true
	}
	return set
}()

// 分析周期枚举
const (
	Period7Days  = "7days"
	Period30Days = "30days"
	Period90Days = "90days"
)

var PeriodSet = map[string]bool{
	Period7Days:  true,
	Period30Days: true,
	Period90Days: true,
}

// DefaultBestPostTime 未提供时的默认发布时间
const DefaultBestPostTime = "Wednesday 7 PM"

// BestPostTimes 周一到周日的推荐发布时段
var BestPostTimes = []string{
	"Monday 6 PM",
	"Tuesday 7 PM",
	"Wednesday 7 PM",
	"Thursday 8 PM",
	"Friday 6 PM",
	"Saturday 5 PM",
	"Sunday 4 PM",
}
