package config

const (
	DefaultLLMBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultLLMModel   = "gemini-2.5-flash"
)

// LLMConfig 翻译/摘要使用的模型服务（OpenAI 兼容接口）
type LLMConfig struct {
	APIKey  string `json:"api_key" yaml:"api_key"`
	BaseURL string `json:"base_url" yaml:"base_url"`
	Model   string `json:"model" yaml:"model"`
}

func ProvideLLMConfig(cfg *Config) *LLMConfig {
	return cfg.LLM
}

// AnalyzerConfig 管理端调用的分析接口
type AnalyzerConfig struct {
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}
