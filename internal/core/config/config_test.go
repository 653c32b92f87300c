package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.yaml")
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(missingPath(t))
	require.NoError(t, err)

	assert.Equal(t, 3001, c.App.HTTP.Port)
	assert.Equal(t, "postgres", c.DB.Driver)
	assert.Equal(t, "postgresql://localhost/canny", c.DB.DSN)
	assert.Equal(t, DefaultJWTSecret, c.JWT.Secret)
	assert.Equal(t, 0, c.JWT.AccessTokenTTLMin)
	assert.True(t, c.DB.AutoMigrate)
	assert.True(t, c.UsingDefaultSecret())
}

func TestLoad_LegacyEnvNames(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://db.internal/canny")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("PORT", "8080")

	c, err := Load(missingPath(t))
	require.NoError(t, err)

	assert.Equal(t, "postgresql://db.internal/canny", c.DB.DSN)
	assert.Equal(t, "s3cr3t", c.JWT.Secret)
	assert.Equal(t, 8080, c.App.HTTP.Port)
	assert.False(t, c.UsingDefaultSecret())
}

func TestLoad_PrefixedEnvWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://legacy/canny")
	t.Setenv("APP_DB_DSN", "postgresql://prefixed/canny")

	c, err := Load(missingPath(t))
	require.NoError(t, err)
	assert.Equal(t, "postgresql://prefixed/canny", c.DB.DSN)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte(`
app:
  http:
    port: 4000
log:
  level: debug
  json: true
jwt:
  issuer: canny
  access_token_ttl_min: 30
db:
  driver: sqlite
  dsn: "file::memory:"
  max_open_conns: 1
`)
	require.NoError(t, os.WriteFile(path, body, 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4000, c.App.HTTP.Port)
	assert.Equal(t, "debug", c.Log.Level)
	assert.True(t, c.Log.JSON)
	assert.Equal(t, "canny", c.JWT.Issuer)
	assert.Equal(t, 30, c.JWT.AccessTokenTTLMin)
	assert.Equal(t, "sqlite", c.DB.Driver)
	assert.Equal(t, "file::memory:", c.DB.DSN)
	assert.Equal(t, 1, c.DB.MaxOpenConns)
	// 文件未覆盖的键仍取默认值
	assert.Equal(t, 10, c.DB.MaxIdleConns)
}

func TestLoad_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
