package resourcepool

import (
	"fmt"
	"log/slog"
)

type Config struct {
	initialSize      int
	preferredSize    int
	maximumSize      int
	unlockedCreation bool
	onEmpty          func(*ResourcePool)
	log              *slog.Logger
}

type Option func(*Config)

func defaultConfig() *Config {
	return &Config{
		log: slog.Default(),
	}
}

// WithInitialSize sets how many resources are created eagerly, one per acquire, before idle reuse starts.
func WithInitialSize(size int) Option {
	return func(c *Config) {
		c.initialSize = size
	}
}

// WithPreferredSize sets the steady state size the pool shrinks towards on release. 0 disables it.
func WithPreferredSize(size int) Option {
	return func(c *Config) {
		c.preferredSize = size
	}
}

// WithMaximumSize caps the number of resources. 0 means unbounded.
func WithMaximumSize(size int) Option {
	return func(c *Config) {
		c.maximumSize = size
	}
}

// WithUnlockedCreation releases the pool lock while the factory runs. A slot is reserved
// beforehand so the maximum size still holds. By default creation happens with the lock held.
func WithUnlockedCreation(unlocked bool) Option {
	return func(c *Config) {
		c.unlockedCreation = unlocked
	}
}

// WithOnEmpty registers a callback run, without the pool lock, when a release, removal or
// expiry sweep leaves the pool with no resources.
func WithOnEmpty(fn func(*ResourcePool)) Option {
	return func(c *Config) {
		c.onEmpty = fn
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Config) {
		c.log = log
	}
}

func (c *Config) validate() error {
	if c.initialSize < 0 || c.preferredSize < 0 || c.maximumSize < 0 {
		return fmt.Errorf("%w: sizes must not be negative", ErrInvalidConfig)
	}

	if c.maximumSize > 0 {
		if c.initialSize > c.maximumSize {
			return fmt.Errorf("%w: initial size %d exceeds maximum size %d", ErrInvalidConfig, c.initialSize, c.maximumSize)
		}
		if c.preferredSize > c.maximumSize {
			return fmt.Errorf("%w: preferred size %d exceeds maximum size %d", ErrInvalidConfig, c.preferredSize, c.maximumSize)
		}
	}

	if c.log == nil {
		c.log = slog.Default()
	}

	return nil
}
