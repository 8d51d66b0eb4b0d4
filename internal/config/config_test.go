package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weave/internal/block"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Project.Root)
	assert.Equal(t, "docs", cfg.Project.Output)
	assert.Equal(t, "md", cfg.Weave.Format)
	assert.True(t, cfg.Weave.Trim)
	assert.Equal(t, "toc.yml", cfg.Weave.TOC)
	assert.NotEmpty(t, cfg.Weave.Include)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weave.yml")
	data := `project:
  root: ./src
  output: site
weave:
  format: html
  trim: false
  include:
    - "**.go"
  exclude:
    - "**_test.go"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "./src", cfg.Project.Root)
	assert.Equal(t, "site", cfg.Project.Output)
	assert.Equal(t, "html", cfg.Weave.Format)
	assert.False(t, cfg.Weave.Trim)
	assert.Equal(t, []string{"**.go"}, cfg.Weave.Include)
	assert.Equal(t, []string{"**_test.go"}, cfg.Weave.Exclude)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("WEAVE_FORMAT", "html")
	t.Setenv("WEAVE_OUTPUT", "public")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, "html", cfg.Weave.Format)
	assert.Equal(t, "public", cfg.Project.Output)
}

func TestConfig_Format(t *testing.T) {
	cfg := Default()

	cfg.Weave.Format = "md"
	format, err := cfg.Format()
	require.NoError(t, err)
	assert.Equal(t, block.Markdown, format)

	cfg.Weave.Format = "html"
	format, err = cfg.Format()
	require.NoError(t, err)
	assert.Equal(t, block.HTML, format)

	cfg.Weave.Format = "pdf"
	_, err = cfg.Format()
	assert.Error(t, err)
}
