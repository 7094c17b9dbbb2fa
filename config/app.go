package config

type App struct {
	Env      string `json:"env" yaml:"env"`
	Debug    bool   `json:"debug" yaml:"debug"`
	LogLevel string `json:"log_level" yaml:"log_level"`
	NodeID   int64  `json:"node_id" yaml:"node_id"` // snowflake 节点号
}

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
}

// RateLimit 点赞/关注/收藏等写接口的限流，Window 单位秒
type RateLimit struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Limit   int  `json:"limit" yaml:"limit"`
	Window  int  `json:"window" yaml:"window"`
}
