package dfa

import "fmt"

// Config tunes a DFA's resource limits.
type Config struct {
	// CacheCapacity bounds how many states the lazy cache holds at once.
	CacheCapacity int

	// MaxConstructionStates bounds how many distinct states a single search
	// is allowed to construct in total (not just cache-resident at once)
	// before giving up with TooManyStates. This guards against pathological
	// programs whose powerset blows up despite a small byte alphabet.
	MaxConstructionStates int
}

// DefaultConfig returns the configuration new DFAs use unless overridden.
func DefaultConfig() Config {
	return Config{
		CacheCapacity:         1024,
		MaxConstructionStates: 1000,
	}
}

// Validate reports an error if the configuration is unusable.
func (c Config) Validate() error {
	if c.CacheCapacity < 1 {
		return fmt.Errorf("dfa: CacheCapacity must be >= 1, got %d", c.CacheCapacity)
	}
	if c.MaxConstructionStates < 1 {
		return fmt.Errorf("dfa: MaxConstructionStates must be >= 1, got %d", c.MaxConstructionStates)
	}
	return nil
}

// WithCacheCapacity returns a copy of c with CacheCapacity set.
func (c Config) WithCacheCapacity(n int) Config {
	c.CacheCapacity = n
	return c
}

// WithMaxConstructionStates returns a copy of c with MaxConstructionStates set.
func (c Config) WithMaxConstructionStates(n int) Config {
	c.MaxConstructionStates = n
	return c
}
