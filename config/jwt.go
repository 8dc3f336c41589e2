package config

// Jwt Cookie 签名密钥
type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
}
