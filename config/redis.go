package config

import (
	"net"
	"strconv"
)

// Redis 仅用于写接口限流
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
}

func (r *Redis) Addr() string {
	return net.JoinHostPort(r.Address, strconv.Itoa(r.Port))
}
