package config

import (
	"fmt"
	"slices"
)

var (
	strategies = []string{"synthesis", "scan"}
	formats    = []string{"console", "json"}
)

// Validate checks value ranges and enumerations. Load calls it.
func (c *Config) Validate() error {
	if c.Dictionary.Path == "" {
		return fmt.Errorf("dictionary.path must be set")
	}
	if !slices.Contains(strategies, c.Search.Strategy) {
		return fmt.Errorf("search.strategy must be one of %v (got %q)", strategies, c.Search.Strategy)
	}
	if c.Search.Strategy == "synthesis" && c.Search.Alphabet == "" {
		return fmt.Errorf("search.alphabet must not be empty for the synthesis strategy")
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("search.max_expansions must be >= 0 (got %d)", c.Search.MaxExpansions)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("search.timeout must be >= 0 (got %s)", c.Search.Timeout)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers must be >= 0 (got %d)", c.Batch.Workers)
	}
	if !slices.Contains(formats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", formats, c.Log.Format)
	}
	return nil
}
