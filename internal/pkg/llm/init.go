package llm

import (
	"CreatorHub/internal/api/config"
	log "log/slog"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var llmClient llms.Model

var ideaPrompt string

func InitLLM() error {
	cfg := config.Cfg.LLM

	llm, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)

	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return err
	}

	llmClient = llm

	// 从prompt txt文件中读取prompt
	ideaPrompt = readPrompt(cfg.PromptsPath.ContentIdea)

	return nil
}

func readPrompt(file string) string {
	data, err := os.ReadFile(file)
	if err != nil {
		log.Error("读取prompt文件失败", "err", err)
		return ""
	}
	return string(data)
}
