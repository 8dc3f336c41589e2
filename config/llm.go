package config

// LLM 大模型配置信息
type LLM struct {
	ApiKey  string `json:"api_key" yaml:"api_key"`
	BaseURL string `json:"base_url" yaml:"base_url"`
	Model   string `json:"model" yaml:"model"`
}
