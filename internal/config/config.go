// Package config loads wordladder settings from an optional YAML file and
// WORDLADDER_* environment variables.
package config

import "time"

// Config is the root configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Search     SearchConfig     `yaml:"search"`
	Batch      BatchConfig      `yaml:"batch"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig points at the word list.
type DictionaryConfig struct {
	Path string `yaml:"path" env:"WORDLADDER_DICTIONARY" env-default:"words.txt"`
}

// SearchConfig tunes a single ladder search.
type SearchConfig struct {
	Strategy      string        `yaml:"strategy"       env:"WORDLADDER_STRATEGY"       env-default:"synthesis"`
	Alphabet      string        `yaml:"alphabet"       env:"WORDLADDER_ALPHABET"       env-default:"abcdefghijklmnopqrstuvwxyz"`
	MaxExpansions int           `yaml:"max_expansions" env:"WORDLADDER_MAX_EXPANSIONS" env-default:"0"`
	Timeout       time.Duration `yaml:"timeout"        env:"WORDLADDER_TIMEOUT"        env-default:"0s"`
}

// BatchConfig sizes the worker pool used for several queries at once.
type BatchConfig struct {
	Workers int `yaml:"workers" env:"WORDLADDER_WORKERS" env-default:"0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"WORDLADDER_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"WORDLADDER_LOG_FORMAT" env-default:"console"`
}
