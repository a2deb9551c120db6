package config

const (
	DefaultPageSize    = 100
	DefaultMaxPageSize = 1000
)

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// 列表接口默认每页条数，可被 items_per_page 覆盖
	PageSize    int `json:"page_size" yaml:"page_size"`
	MaxPageSize int `json:"max_page_size" yaml:"max_page_size"`
}
