package types

type TagInfo struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CategoryInfo 分类及其下全部标签
type CategoryInfo struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Tags        []TagInfo `json:"tags"`
}
