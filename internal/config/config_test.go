package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/cellview/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, render.EscapeText, cfg.EscapePolicy())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cellview.yaml")
	content := []byte(`
log:
  level: debug
render:
  escape: none
  sanitize_html: true
  highlight: monokai
decode:
  max_payload_bytes: 1024
redis:
  addr: localhost:6379
  ttl: 5m
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, render.EscapeNone, cfg.EscapePolicy())
	assert.True(t, cfg.Render.SanitizeHTML)
	assert.Equal(t, "monokai", cfg.Render.Highlight)
	assert.Equal(t, 1024, cfg.Decode.MaxPayloadBytes)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "cellview:region:", cfg.Redis.Prefix, "defaults survive partial files")
	assert.True(t, cfg.Server.Metrics)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv(EnvMaxPayloadSize, "77")
	t.Setenv(EnvRedisAddr, "redis:6379")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.Decode.MaxPayloadBytes)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("render: [unterminated"), 0o644))
	_, err := Load(bad)
	assert.Error(t, err)

	policy := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(policy, []byte("render:\n  escape: html\n"), 0o644))
	_, err = Load(policy)
	assert.ErrorContains(t, err, "render.escape")
}
