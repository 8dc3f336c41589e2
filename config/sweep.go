package config

// Sweep 笔记自毁清理任务配置
type Sweep struct {
	IntervalSeconds int `json:"interval_seconds" yaml:"interval_seconds"`
}
