package llm

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-json"
)

// IdeaResponse 生成结果，字段总是非 nil，hashtags 保证非空
type IdeaResponse struct {
	ReelIdea string   `json:"reelIdea"`
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
	Hook     string   `json:"hook"`
}

// rawIdea hashtags 延迟解析，模型偶尔会返回字符串而不是数组
type rawIdea struct {
	ReelIdea string          `json:"reelIdea"`
	Caption  string          `json:"caption"`
	Hashtags json.RawMessage `json:"hashtags"`
	Hook     string          `json:"hook"`
}

var fencedBlockRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ParseIdeaResponse 从模型的自由文本回复中提取 JSON
// 处理顺序：去空白 -> 代码块 -> 花括号区间 -> 严格解析 -> 兜底模板。
// 任何一步失败都不报错，回复方永远拿到结构完整的结果。
func ParseIdeaResponse(raw string, topic string, niche string) *IdeaResponse {
	candidate := extractCandidate(raw)
	if candidate == "" {
		return FallbackIdea(topic, niche)
	}

	var temp rawIdea
	if err := json.Unmarshal([]byte(candidate), &temp); err != nil {
		return FallbackIdea(topic, niche)
	}

	res := &IdeaResponse{
		ReelIdea: temp.ReelIdea,
		Caption:  temp.Caption,
		Hook:     temp.Hook,
	}

	// hashtags 不是数组或为空时替换为默认标签，解析成功的数组原样保留
	var tags []string
	if len(temp.Hashtags) == 0 || json.Unmarshal(temp.Hashtags, &tags) != nil || len(tags) == 0 {
		tags = DefaultHashtags(topic, niche)
	}
	res.Hashtags = tags

	return res
}

// extractCandidate 定位候选 JSON 文本
func extractCandidate(raw string) string {
	text := strings.TrimSpace(raw)

	if m := fencedBlockRegex.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return ""
	}
	return text[start : end+1]
}

// FallbackIdea 解析失败时的确定性兜底结果
func FallbackIdea(topic string, niche string) *IdeaResponse {
	return &IdeaResponse{
		ReelIdea: fmt.Sprintf("Create engaging %s content about %s", niche, topic),
		Caption:  fmt.Sprintf("Fresh %s inspiration: %s. Save this one for later!", niche, topic),
		Hashtags: DefaultHashtags(topic, niche),
		Hook:     fmt.Sprintf("Here is what nobody tells you about %s", topic),
	}
}

// DefaultHashtags 五个默认标签，话题标签去掉空格
func DefaultHashtags(topic string, niche string) []string {
	return []string{
		"#" + niche,
		"#" + strings.ReplaceAll(topic, " ", ""),
		"#content",
		"#instagram",
		"#viral",
	}
}
