package llm

import (
	"CreatorHub/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/tmc/langchaingo/llms"
)

// DefaultTimeout 单次生成请求的兜底超时
const DefaultTimeout = 30 * time.Second

// IdeaRequest 发送给模型的结构化输入
type IdeaRequest struct {
	Topic string `json:"topic"`
	Niche string `json:"niche"`
}

// GenerateIdea 调用外部大模型生成一条内容创意
// 只有传输层失败才返回 error；模型回复格式不正确时退化为模板兜底结果。
func GenerateIdea(ctx context.Context, topic string, niche string) (*IdeaResponse, error) {
	cfg := config.Cfg.LLM

	payload, err := json.Marshal(&IdeaRequest{Topic: topic, Niche: niche})
	if err != nil {
		return nil, err
	}

	timeout := DefaultTimeout
	if cfg.TimeoutSec > 0 {
		timeout = time.Duration(cfg.TimeoutSec) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err = IdeaSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer IdeaSem.Release(1)

	temp := cfg.Temperature
	if temp == 0 {
		temp = 0.7
	}

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(ideaPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(string(payload)),
			},
		},
	}

	log.Info("正在请求AI大模型", "topic", topic, "niche", niche)
	resp, err := llmClient.GenerateContent(ctx, messages,
		llms.WithModel(cfg.Model),
		llms.WithTemperature(temp),
	)
	if err != nil {
		log.Error("AI大模型请求失败", "err", err)
		return nil, err
	}

	if len(resp.Choices) == 0 {
		log.Warn("AI大模型返回空choices，使用兜底模板")
		return FallbackIdea(topic, niche), nil
	}

	return ParseIdeaResponse(resp.Choices[0].Content, topic, niche), nil
}
