package models

// Category 分类，一个分类下挂多个标签
type Category struct {
	ID          uint64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uk_categories_name" json:"name"`
	Description *string `gorm:"column:description;type:text" json:"description"`
	Tags        []*Tag  `gorm:"many2many:category_tags;constraint:OnDelete:CASCADE" json:"tags"`
}

func (Category) TableName() string {
	return "categories"
}

// Tag 标签
type Tag struct {
	ID          uint64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uk_tags_name" json:"name"`
	Description *string `gorm:"column:description;type:text" json:"description"`
}

func (Tag) TableName() string {
	return "tags"
}

// ContentTag 内容与标签的中间表
type ContentTag struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// 联合唯一索引：确保 (content_id, tag_id) 组合唯一，两个外键各自再建一个索引
	ContentID uint64   `gorm:"column:content_id;not null;uniqueIndex:uk_content_tag;index:idx_content_tags_content_id" json:"content_id"`
	TagID     uint64   `gorm:"column:tag_id;not null;uniqueIndex:uk_content_tag;index:idx_content_tags_tag_id" json:"tag_id"`
	Content   *Content `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"-"`
	Tag       *Tag     `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ContentTag) TableName() string {
	return "content_tags"
}
