package dialer

import (
	"log/slog"
	"time"
)

type Config struct {
	targets         []Target
	timeout         time.Duration
	maxRetries      uint
	retryDelay      time.Duration
	fakeConnections bool
	log             *slog.Logger
}

type Option func(*Config)

func defaultConfig() *Config {
	return &Config{
		timeout:    time.Duration(5) * time.Second,
		maxRetries: 3,
		retryDelay: 100 * time.Millisecond,
		log:        slog.Default(),
	}
}

func WithTargets(targets []Target) Option {
	return func(c *Config) {
		c.targets = targets
	}
}

// WithTimeout bounds every single dial attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.timeout = timeout
	}
}

// WithMaxRetries sets how many extra attempts a retryable dial error gets.
func WithMaxRetries(maxRetries uint) Option {
	return func(c *Config) {
		c.maxRetries = maxRetries
	}
}

func WithRetryDelay(delay time.Duration) Option {
	return func(c *Config) {
		c.retryDelay = delay
	}
}

// WithFakeConnections skips the network entirely, useful for dry runs.
func WithFakeConnections(fakeConnections bool) Option {
	return func(c *Config) {
		c.fakeConnections = fakeConnections
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Config) {
		c.log = log
	}
}
