package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"

	"github.com/fractalqb/scriptlint"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "shift-jis", cfg.Encoding)
	assert.Equal(t, scriptlint.DefaultMaxLineChars, cfg.MaxChars)
	assert.Zero(t, cfg.Limit)
	assert.False(t, cfg.Fail)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, yml string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(yml), 0666))
		return path
	}

	t.Run("partial", func(t *testing.T) {
		cfg, err := LoadConfig(write("partial.yaml", `
max_chars: 30
disable:
  - double-space
  - pointer-space
fail: true
`))
		require.NoError(t, err)
		assert.Equal(t, "shift-jis", cfg.Encoding)
		assert.Equal(t, 30, cfg.MaxChars)
		assert.Equal(t, []string{"double-space", "pointer-space"}, cfg.Disable)
		assert.True(t, cfg.Fail)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("syntax", func(t *testing.T) {
		_, err := LoadConfig(write("broken.yaml", "max_chars: [1"))
		assert.Error(t, err)
	})
	t.Run("negative", func(t *testing.T) {
		_, err := LoadConfig(write("negative.yaml", "max_chars: -1"))
		assert.Error(t, err)
	})
}

func TestConfig_Linter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enable = []string{"line-length", "pointers"}
	cfg.Limit = 5
	lnt, err := cfg.Linter()
	require.NoError(t, err)
	assert.Equal(t, japanese.ShiftJIS, lnt.Encoding)
	assert.Equal(t, []string{"pointers", "line-length"}, ruleNames(lnt.Rules))
	assert.Equal(t, 5, lnt.IssueLimit)
	assert.Equal(t, scriptlint.DefaultMaxLineChars, lnt.MaxLineChars)

	cfg.Disable = []string{"bogus"}
	_, err = cfg.Linter()
	assert.ErrorIs(t, err, scriptlint.ErrUnknownRule)

	cfg = DefaultConfig()
	cfg.Encoding = "klingon"
	_, err = cfg.Linter()
	assert.Error(t, err)
}
