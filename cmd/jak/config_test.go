package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
bullet_marker: "*"
heading_offset: 1
language_map:
  c#: csharp
  js: javascript
media_base_url: https://files.example.com/
max_allowed_display: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadFileConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "*", cfg.BulletMarker)
	assert.Equal(t, 1, cfg.HeadingOffset)
	assert.Equal(t, "javascript", cfg.LanguageMap["js"])
	assert.Equal(t, "https://files.example.com/", cfg.MediaBaseURL)
	assert.Equal(t, 5, cfg.MaxAllowedDisplay)

	converterCfg := cfg.converterConfig()
	assert.Equal(t, '*', converterCfg.BulletMarker)
	assert.Equal(t, 1, converterCfg.HeadingOffset)

	parserCfg := cfg.mdconverterConfig()
	assert.Equal(t, "csharp", parserCfg.LanguageMap["c#"])
}

func TestLoadFileConfigEmptyPath(t *testing.T) {
	cfg, err := loadFileConfig("")
	require.NoError(t, err)

	assert.Zero(t, cfg)
}

func TestLoadFileConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bullet_marker: [oops"), 0o644))

	_, err := loadFileConfig(path)
	require.Error(t, err)
}
