package config

import "time"

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// Expire 会话有效期，单位秒
	Expire int64 `json:"expire" yaml:"expire"`
}

func (j *Jwt) TTL() time.Duration {
	return time.Duration(j.Expire) * time.Second
}

func ProvideJwtConfig(cfg *Config) *Jwt {
	return cfg.Jwt
}
