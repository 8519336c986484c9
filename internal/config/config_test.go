package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WORDLADDER_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "words.txt", cfg.Dictionary.Path)
	assert.Equal(t, "synthesis", cfg.Search.Strategy)
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz", cfg.Search.Alphabet)
	assert.Zero(t, cfg.Search.MaxExpansions)
	assert.Zero(t, cfg.Search.Timeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_YAML(t *testing.T) {
	path := writeYAML(t, `
dictionary:
  path: /tmp/dict.txt
search:
  strategy: scan
  max_expansions: 5000
  timeout: 2s
batch:
  workers: 4
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dict.txt", cfg.Dictionary.Path)
	assert.Equal(t, "scan", cfg.Search.Strategy)
	assert.Equal(t, 5000, cfg.Search.MaxExpansions)
	assert.Equal(t, 2*time.Second, cfg.Search.Timeout)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, "json", cfg.Log.Format)
	// unset keys keep their defaults
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz", cfg.Search.Alphabet)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, "search:\n  strategy: scan\n")
	t.Setenv("WORDLADDER_STRATEGY", "synthesis")
	t.Setenv("WORDLADDER_DICTIONARY", "env-words.txt")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "synthesis", cfg.Search.Strategy)
	assert.Equal(t, "env-words.txt", cfg.Dictionary.Path)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	path := writeYAML(t, "batch:\n  workers: 7\n")
	t.Setenv("WORDLADDER_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Batch.Workers)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Dictionary: DictionaryConfig{Path: "words.txt"},
			Search:     SearchConfig{Strategy: "synthesis", Alphabet: "abc"},
			Log:        LogConfig{Level: "warn", Format: "console"},
		}
	}
	c := valid()
	require.NoError(t, c.Validate())

	cases := map[string]func(*Config){
		"no dictionary":      func(c *Config) { c.Dictionary.Path = "" },
		"unknown strategy":   func(c *Config) { c.Search.Strategy = "dfs" },
		"empty alphabet":     func(c *Config) { c.Search.Alphabet = "" },
		"negative ceiling":   func(c *Config) { c.Search.MaxExpansions = -1 },
		"negative timeout":   func(c *Config) { c.Search.Timeout = -time.Second },
		"negative workers":   func(c *Config) { c.Batch.Workers = -2 },
		"unknown log format": func(c *Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		c := valid()
		mutate(&c)
		assert.Error(t, c.Validate(), name)
	}

	// scan ignores the alphabet
	c = valid()
	c.Search.Strategy = "scan"
	c.Search.Alphabet = ""
	assert.NoError(t, c.Validate())
}
