package config

import (
	"fmt"
	"net"
)

// Redis Redis配置信息
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
}

// Addr host:port，address 已带端口时原样返回
func (r *Redis) Addr() string {
	if _, _, err := net.SplitHostPort(r.Address); err == nil {
		return r.Address
	}
	return fmt.Sprintf("%s:%d", r.Address, r.Port)
}
