package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doccheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
content:
  root: docs
language:
  tag: mylang
boilerplate:
  path: prelude.src
compiler:
  path: mylangc
  timeout: 5s
check:
  workers: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "docs", cfg.Content.Root)
	assert.Equal(t, ".md", cfg.Content.Extension)
	assert.Equal(t, "mylang", cfg.Language.Tag)
	assert.Equal(t, "nocheck", cfg.Language.SkipModifier)
	assert.Equal(t, "//", cfg.Language.CommentToken)
	assert.Equal(t, 5*time.Second, cfg.Compiler.Timeout.Std())
	assert.Equal(t, "check", cfg.Compiler.CheckArg)
	assert.Equal(t, 2, cfg.Check.Workers)
	assert.Equal(t, "text", cfg.Check.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty root", func(c *Config) { c.Content.Root = "" }},
		{"empty tag", func(c *Config) { c.Language.Tag = "" }},
		{"multi-token tag", func(c *Config) { c.Language.Tag = "my lang" }},
		{"empty boilerplate", func(c *Config) { c.Boilerplate.Path = "" }},
		{"empty compiler", func(c *Config) { c.Compiler.Path = "" }},
		{"bad format", func(c *Config) { c.Check.Format = "xml" }},
		{"identical markers", func(c *Config) { c.Language.HiddenEnd = c.Language.HiddenStart }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func validConfig() *Config {
	cfg := &Config{
		Content:     ContentConfig{Root: "docs"},
		Language:    LanguageConfig{Tag: "mylang"},
		Boilerplate: BoilerplateConfig{Path: "prelude.src"},
		Compiler:    CompilerConfig{Path: "mylangc"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DOCCHECK_COMPILER", "/opt/mylangc")

	path := writeConfig(t, `
content:
  root: docs
language:
  tag: mylang
boilerplate:
  path: prelude.src
compiler:
  path: mylangc
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/mylangc", cfg.Compiler.Path)
}

func TestDurationUnmarshal(t *testing.T) {
	path := writeConfig(t, `
content:
  root: docs
language:
  tag: mylang
boilerplate:
  path: prelude.src
compiler:
  path: mylangc
  timeout: 1m30s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Compiler.Timeout.Std())
}

func TestNormalizers(t *testing.T) {
	assert.Equal(t, LogLevelWarn, NormalizeLogLevel("WARNING"))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel("bogus"))
	assert.Equal(t, LogFormatJSON, NormalizeLogFormat("JSON"))
	assert.Equal(t, LogFormatText, NormalizeLogFormat(""))
}
