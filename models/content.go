package models

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrNegativeCounter = errors.New("counter must not be negative")

// Content 作者发布的内容
// 对应表 contents，计数字段由采集端回写（upsert），读接口从不修改
type Content struct {
	ID           uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AuthorID     uint64         `gorm:"column:author_id;not null;index:idx_contents_author_id" json:"author_id"`
	Author       *Author        `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	UniqueID     string         `gorm:"column:unique_id;type:varchar(255);not null;index:idx_contents_unique_id" json:"unique_id"` // 上游ID，库里没有唯一约束（已知会重复）
	URL          string         `gorm:"column:url;type:varchar(1024);not null;default:''" json:"url"`
	Title        string         `gorm:"column:title;type:text" json:"title"`
	LikeCount    int64          `gorm:"column:like_count;not null;default:0" json:"like_count"`
	CommentCount int64          `gorm:"column:comment_count;not null;default:0" json:"comment_count"`
	ViewCount    int64          `gorm:"column:view_count;not null;default:0" json:"view_count"`
	ShareCount   int64          `gorm:"column:share_count;not null;default:0" json:"share_count"`
	ThumbnailURL *string        `gorm:"column:thumbnail_url;type:varchar(1024)" json:"thumbnail_url"`
	Timestamp    *time.Time     `gorm:"column:timestamp" json:"timestamp"` // 内容在原平台的发布时间
	BigMetadata  datatypes.JSON `gorm:"column:big_metadata" json:"-"`
	SecretValue  datatypes.JSON `gorm:"column:secret_value" json:"-"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime;index:idx_contents_created_at" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Content) TableName() string {
	return "contents"
}

// BeforeSave 计数不允许为负
func (c *Content) BeforeSave(tx *gorm.DB) error {
	if c.LikeCount < 0 || c.CommentCount < 0 || c.ViewCount < 0 || c.ShareCount < 0 {
		return ErrNegativeCounter
	}
	return nil
}
