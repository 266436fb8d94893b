package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Logstash LogstashConfig `mapstructure:"logstash"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// MongoConfig MongoDB配置
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// AuthConfig 托管身份服务签发的会话令牌校验配置
type AuthConfig struct {
	// SessionKey 身份服务下发的会话令牌验签密钥
	SessionKey string `mapstructure:"session_key"`
	// Issuer 期望的签发方，为空则不校验
	Issuer string `mapstructure:"issuer"`
}

type LLMConfig struct {
	URL         string  `mapstructure:"url"`
	Model       string  `mapstructure:"model"`
	ApiKey      string  `mapstructure:"api_key"`
	Temperature float64 `mapstructure:"temperature"`
	// TimeoutSec 单次生成请求的超时时间（秒），默认 30
	TimeoutSec  int              `mapstructure:"timeout_sec"`
	PromptsPath PromptPathConfig `mapstructure:"prompts_path"`
}

type PromptPathConfig struct {
	ContentIdea string `mapstructure:"content_idea"`
}

// LogstashConfig 远程日志配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}
