package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	conf, err := Parse([]byte("app:\n  env: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", conf.App.Env)
	assert.Equal(t, DefaultPageSize, conf.App.PageSize)
	assert.Equal(t, DefaultMaxPageSize, conf.App.MaxPageSize)
	assert.Equal(t, 8080, conf.Server.Http)
	assert.Equal(t, 3306, conf.MySQL.Port)
	assert.Equal(t, 10*time.Second, conf.MySQL.QueryTimeout)
	assert.Equal(t, 5*time.Minute, conf.Redis.CategoryTTL)
	assert.False(t, conf.Redis.Enabled)
}

func TestParse_Durations(t *testing.T) {
	conf, err := Parse([]byte(`
mysql:
  query_timeout: 3s
  max_lifetime: 30m
redis:
  enabled: true
  category_ttl: 90s
`))
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, conf.MySQL.QueryTimeout)
	assert.Equal(t, 30*time.Minute, conf.MySQL.MaxLifetime)
	assert.Equal(t, 90*time.Second, conf.Redis.CategoryTTL)
	assert.True(t, conf.Redis.Enabled)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("app: [unterminated"))
	assert.Error(t, err)
}

func TestMySQL_Dsn(t *testing.T) {
	m := &MySQL{Username: "root", Password: "pw", Host: "db", Port: 3307, Database: "engage", Charset: "utf8mb4"}
	assert.Equal(t, "root:pw@tcp(db:3307)/engage?charset=utf8mb4&parseTime=True&loc=UTC", m.Dsn())
}

func TestNew_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  http: 9090\napp:\n  debug: true\n"), 0o644))

	conf := New(path)
	assert.Equal(t, 9090, conf.Server.Http)
	assert.True(t, conf.Debug())
}

func TestNew_MissingFilePanics(t *testing.T) {
	assert.Panics(t, func() {
		New(filepath.Join(t.TempDir(), "missing.yaml"))
	})
}
