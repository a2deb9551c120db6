package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Author 内容作者
// big_metadata / secret_value 只在库里存放，不允许出现在任何接口响应中
type Author struct {
	ID          uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"column:name;type:varchar(100);not null;default:''" json:"name"`
	Username    string         `gorm:"column:username;type:varchar(100);not null;default:'';index:idx_authors_username" json:"username"`
	UniqueID    string         `gorm:"column:unique_id;type:varchar(255);not null;uniqueIndex:uk_authors_unique_id" json:"unique_id"` // 上游平台的稳定ID
	URL         string         `gorm:"column:url;type:varchar(1024);not null;default:''" json:"url"`
	Title       string         `gorm:"column:title;type:varchar(1024);not null;default:''" json:"title"`
	Followers   int64          `gorm:"column:followers;not null;default:0" json:"followers"`
	BigMetadata datatypes.JSON `gorm:"column:big_metadata" json:"-"`
	SecretValue datatypes.JSON `gorm:"column:secret_value" json:"-"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Author) TableName() string {
	return "authors"
}

func (a *Author) BeforeSave(tx *gorm.DB) error {
	if a.Followers < 0 {
		return ErrNegativeCounter
	}
	return nil
}
