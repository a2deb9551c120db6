package dao

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ContentFilter 内容筛选条件，零值字段不参与筛选，各条件之间为 AND
type ContentFilter struct {
	AuthorID       *uint64
	AuthorUsername string
	CreatedSince   *time.Time
	TagID          *uint64
	TagName        string
	Title          string
	// 参数无法解析（如 author_id=abc）时不报错，但任何内容都不匹配
	MatchNone bool
}

// Scopes 把筛选条件转成可组合的 gorm scope，列名都带 contents. 前缀，方便与 authors 联表
func (f ContentFilter) Scopes() []func(*gorm.DB) *gorm.DB {
	if f.MatchNone {
		return []func(*gorm.DB) *gorm.DB{MatchNone()}
	}

	scopes := make([]func(*gorm.DB) *gorm.DB, 0, 6)
	if f.AuthorID != nil {
		scopes = append(scopes, ByAuthorID(*f.AuthorID))
	}
	if f.AuthorUsername != "" {
		scopes = append(scopes, ByAuthorUsername(f.AuthorUsername))
	}
	if f.CreatedSince != nil {
		scopes = append(scopes, CreatedSince(*f.CreatedSince))
	}
	if f.TagID != nil {
		scopes = append(scopes, HasTagID(*f.TagID))
	}
	if f.TagName != "" {
		scopes = append(scopes, HasTagName(f.TagName))
	}
	if f.Title != "" {
		scopes = append(scopes, TitleContains(f.Title))
	}
	return scopes
}

func MatchNone() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("1 = 0")
	}
}

func ByAuthorID(authorID uint64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("contents.author_id = ?", authorID)
	}
}

func ByAuthorUsername(username string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("contents.author_id IN (SELECT authors.id FROM authors WHERE authors.username = ?)", username)
	}
}

// CreatedSince 按入库时间（created_at）过滤，不是内容发布时间 timestamp
func CreatedSince(since time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("contents.created_at >= ?", since)
	}
}

// HasTagID 用 EXISTS 而不是 JOIN，同一内容不会因为多行关联被重复返回
func HasTagID(tagID uint64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("EXISTS (SELECT 1 FROM content_tags WHERE content_tags.content_id = contents.id AND content_tags.tag_id = ?)", tagID)
	}
}

func HasTagName(name string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("EXISTS (SELECT 1 FROM content_tags JOIN tags ON tags.id = content_tags.tag_id "+
			"WHERE content_tags.content_id = contents.id AND tags.name = ?)", name)
	}
}

// TitleContains 标题不区分大小写的子串匹配
func TitleContains(title string) func(*gorm.DB) *gorm.DB {
	pattern := "%" + escapeLike(strings.ToLower(title)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(contents.title) LIKE ? ESCAPE '!'", pattern)
	}
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
