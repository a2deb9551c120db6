// Package testutil 单测用的内存库和数据构造
package testutil

import (
	"Engage/models"
	"Engage/pkg/database"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seq atomic.Int64

// SetupTestDB 每个测试一个独立的内存 SQLite，已建好全部表
// 只开一个连接：内存库是按连接隔离的
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// CreateAuthor 带敏感字段，方便断言它们不会出现在响应里
func CreateAuthor(t *testing.T, db *gorm.DB, username string, followers int64) *models.Author {
	t.Helper()
	n := seq.Add(1)
	author := &models.Author{
		Name:        "Author " + username,
		Username:    username,
		UniqueID:    fmt.Sprintf("author-%d", n),
		URL:         "https://example.com/" + username,
		Followers:   followers,
		BigMetadata: datatypes.JSON(`{"raw":"payload"}`),
		SecretValue: datatypes.JSON(`{"token":"s3cr3t"}`),
	}
	require.NoError(t, db.Create(author).Error)
	return author
}

type Counters struct {
	Likes, Comments, Views, Shares int64
}

func CreateContent(t *testing.T, db *gorm.DB, author *models.Author, title string, c Counters) *models.Content {
	t.Helper()
	n := seq.Add(1)
	content := &models.Content{
		AuthorID:     author.ID,
		UniqueID:     fmt.Sprintf("content-%d", n),
		URL:          fmt.Sprintf("https://example.com/p/%d", n),
		Title:        title,
		LikeCount:    c.Likes,
		CommentCount: c.Comments,
		ViewCount:    c.Views,
		ShareCount:   c.Shares,
		BigMetadata:  datatypes.JSON(`{"raw":"payload"}`),
		SecretValue:  datatypes.JSON(`{"token":"s3cr3t"}`),
	}
	require.NoError(t, db.Create(content).Error)
	return content
}

func CreateTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func CreateCategory(t *testing.T, db *gorm.DB, name string, tags ...*models.Tag) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Tags: tags}
	require.NoError(t, db.Create(category).Error)
	return category
}

func TagContent(t *testing.T, db *gorm.DB, content *models.Content, tags ...*models.Tag) {
	t.Helper()
	for _, tag := range tags {
		require.NoError(t, db.Create(&models.ContentTag{ContentID: content.ID, TagID: tag.ID}).Error)
	}
}

// Backdate 改写入库时间，用于 timeframe 相关测试
func Backdate(t *testing.T, db *gorm.DB, content *models.Content, days int) {
	t.Helper()
	createdAt := time.Now().UTC().AddDate(0, 0, -days)
	require.NoError(t, db.Model(&models.Content{}).
		Where("id = ?", content.ID).
		UpdateColumn("created_at", createdAt).Error)
	content.CreatedAt = createdAt
}
