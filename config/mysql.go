package config

import (
	"fmt"
	"time"
)

// MySQL 数据库配置
type MySQL struct {
	Host         string `json:"host" yaml:"host"`
	Port         int    `json:"port" yaml:"port"`
	Username     string `json:"username" yaml:"username"`
	Password     string `json:"password" yaml:"password"`
	Database     string `json:"database" yaml:"database"`
	Charset      string `json:"charset" yaml:"charset"`
	LogLevel     string `json:"log_level" yaml:"log_level"` // silent, error, warn, info
	MaxOpenConns int    `json:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns" yaml:"max_idle_conns"`
	// 连接最大存活时间
	MaxLifetime time.Duration `json:"max_lifetime" yaml:"max_lifetime"`
	// 单次请求内所有查询的超时时间
	QueryTimeout  time.Duration `json:"query_timeout" yaml:"query_timeout"`
	SlowThreshold time.Duration `json:"slow_threshold" yaml:"slow_threshold"`
}

func (m *MySQL) withDefaults() {
	if m.Host == "" {
		m.Host = "127.0.0.1"
	}
	if m.Port == 0 {
		m.Port = 3306
	}
	if m.Charset == "" {
		m.Charset = "utf8mb4"
	}
	if m.LogLevel == "" {
		m.LogLevel = "warn"
	}
	if m.MaxOpenConns <= 0 {
		m.MaxOpenConns = 100
	}
	if m.MaxIdleConns <= 0 {
		m.MaxIdleConns = 10
	}
	if m.MaxLifetime <= 0 {
		m.MaxLifetime = time.Hour
	}
	if m.QueryTimeout <= 0 {
		m.QueryTimeout = 10 * time.Second
	}
	if m.SlowThreshold <= 0 {
		m.SlowThreshold = 200 * time.Millisecond
	}
}

// Dsn 拼接 go-sql-driver 连接串
func (m *MySQL) Dsn() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=UTC",
		m.Username, m.Password, m.Host, m.Port, m.Database, m.Charset)
}
