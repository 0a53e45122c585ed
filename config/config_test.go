package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "http:\n  port: 9090\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "alumnet", cfg.DB.Name)
	assert.Equal(t, "alumnet", cfg.JWT.Issuer)
	assert.Equal(t, 15, cfg.JWT.AccessExpMin)
	assert.Equal(t, 10, cfg.JWT.RefreshExpDay)
	assert.NotEmpty(t, cfg.JWT.AccessSecret)
	assert.NotEmpty(t, cfg.JWT.RefreshSecret)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
http:
  host: 0.0.0.0
  port: 8000
db:
  host: db.internal
  name: alumnet_prod
jwt:
  access_secret: aaa
  refresh_secret: rrr
  access_exp_min: 30
redis:
  addr: localhost:6379
s3:
  bucket: alumnet-avatars
  region: eu-west-1
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "alumnet_prod", cfg.DB.Name)
	assert.Equal(t, "aaa", cfg.JWT.AccessSecret)
	assert.Equal(t, "rrr", cfg.JWT.RefreshSecret)
	assert.Equal(t, 30, cfg.JWT.AccessExpMin)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "alumnet-avatars", cfg.S3.Bucket)
	assert.Equal(t, "eu-west-1", cfg.S3.Region)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
