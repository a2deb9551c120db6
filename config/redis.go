package config

import "time"

// Redis Redis配置信息
type Redis struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
	// 分类列表缓存时间
	CategoryTTL time.Duration `json:"category_ttl" yaml:"category_ttl"`
}

func (r *Redis) withDefaults() {
	if r.Address == "" {
		r.Address = "127.0.0.1"
	}
	if r.Port == 0 {
		r.Port = 6379
	}
	if r.CategoryTTL <= 0 {
		r.CategoryTTL = 5 * time.Minute
	}
}
