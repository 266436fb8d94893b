package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdeaResponseFencedBlock(t *testing.T) {
	raw := "Here is your idea:\n```json\n{\"reelIdea\":\"Day in the life vlog\",\"caption\":\"POV: you finally did it\",\"hashtags\":[\"#fitness\",\"#gym\",\"#fyp\",\"#health\",\"#viral\"],\"hook\":\"Stop scrolling\"}\n```\nHope you like it!"

	res := ParseIdeaResponse(raw, "morning workout", "fitness")
	require.NotNil(t, res)

	assert.Equal(t, "Day in the life vlog", res.ReelIdea)
	assert.Equal(t, "POV: you finally did it", res.Caption)
	assert.Equal(t, "Stop scrolling", res.Hook)
	assert.Equal(t, []string{"#fitness", "#gym", "#fyp", "#health", "#viral"}, res.Hashtags)
}

func TestParseIdeaResponseKeepsHashtagsVerbatim(t *testing.T) {
	// 解析成功的标签数组原样保留，不补前缀也不去重
	raw := "```json\n{\"reelIdea\":\"r\",\"caption\":\"c\",\"hashtags\":[\"a\",\"b\",\"c\",\"d\",\"e\"],\"hook\":\"h\"}\n```"

	res := ParseIdeaResponse(raw, "topic", "fitness")
	require.NotNil(t, res)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, res.Hashtags)

	raw = "{\"reelIdea\":\"r\",\"caption\":\"c\",\"hashtags\":[\"#dup\",\"#dup\",\"tag!\"],\"hook\":\"h\"}"
	res = ParseIdeaResponse(raw, "topic", "fitness")
	assert.Equal(t, []string{"#dup", "#dup", "tag!"}, res.Hashtags)
}

func TestParseIdeaResponseBraceSpan(t *testing.T) {
	raw := "Sure! {\"reelIdea\":\"Budget breakdown\",\"caption\":\"Save this\",\"hashtags\":[\"#finance\"],\"hook\":\"You are losing money\"} Let me know."

	res := ParseIdeaResponse(raw, "saving money", "finance")
	require.NotNil(t, res)

	assert.Equal(t, "Budget breakdown", res.ReelIdea)
	assert.Equal(t, []string{"#finance"}, res.Hashtags)
}

func TestParseIdeaResponseProseFallback(t *testing.T) {
	res := ParseIdeaResponse("I cannot produce JSON right now, sorry.", "street style", "fashion")
	require.NotNil(t, res)

	// 兜底结果结构完整
	assert.NotEmpty(t, res.ReelIdea)
	assert.NotEmpty(t, res.Caption)
	assert.NotEmpty(t, res.Hook)
	assert.Len(t, res.Hashtags, 5)
	for _, tag := range res.Hashtags {
		assert.NotEmpty(t, tag)
	}
}

func TestParseIdeaResponseMalformedJSON(t *testing.T) {
	res := ParseIdeaResponse("{\"reelIdea\": \"broken", "travel hacks", "travel")
	require.NotNil(t, res)
	assert.Len(t, res.Hashtags, 5)
}

func TestParseIdeaResponseHashtagsNotArray(t *testing.T) {
	raw := "{\"reelIdea\":\"Recipe reveal\",\"caption\":\"Yum\",\"hashtags\":\"#food #yum\",\"hook\":\"Wait for it\"}"

	res := ParseIdeaResponse(raw, "pasta recipe", "food")
	require.NotNil(t, res)

	// 其余字段保留，标签替换为默认值
	assert.Equal(t, "Recipe reveal", res.ReelIdea)
	assert.Equal(t, []string{"#food", "#pastarecipe", "#content", "#instagram", "#viral"}, res.Hashtags)
}

func TestParseIdeaResponseEmptyInput(t *testing.T) {
	res := ParseIdeaResponse("   ", "skincare", "beauty")
	require.NotNil(t, res)
	assert.Len(t, res.Hashtags, 5)
}

func TestFallbackIdeaDeterministic(t *testing.T) {
	a := FallbackIdea("crypto basics", "finance")
	b := FallbackIdea("crypto basics", "finance")
	assert.Equal(t, a, b)
}

func TestDefaultHashtagsStripSpaces(t *testing.T) {
	tags := DefaultHashtags("home workout tips", "fitness")
	assert.Equal(t, "#homeworkouttips", tags[1])
	assert.Equal(t, "#fitness", tags[0])
	assert.Len(t, tags, 5)
}
