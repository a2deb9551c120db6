package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App    *App    `json:"app" yaml:"app"`
	Redis  *Redis  `json:"redis" yaml:"redis"`
	MySQL  *MySQL  `json:"mysql" yaml:"mysql"`
	Server *Server `json:"server" yaml:"server"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	return conf
}

// Parse 解析 yaml 内容并补齐默认值
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.withDefaults()
	return &conf, nil
}

func (c *Config) withDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.MySQL == nil {
		c.MySQL = &MySQL{}
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}

	if c.App.PageSize <= 0 {
		c.App.PageSize = DefaultPageSize
	}
	if c.App.MaxPageSize <= 0 {
		c.App.MaxPageSize = DefaultMaxPageSize
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	c.MySQL.withDefaults()
	c.Redis.withDefaults()
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
