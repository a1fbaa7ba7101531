package resourcepool

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned when the acquire deadline passes while waiting for capacity.
	ErrTimeout = errors.New("resourcepool: timed out waiting for a resource")
	// ErrInterrupted is returned when the caller's context is cancelled while waiting.
	ErrInterrupted = errors.New("resourcepool: interrupted while waiting for a resource")
	// ErrFactoryFailed wraps the error returned by the Factory.
	ErrFactoryFailed = errors.New("resourcepool: resource creation failed")
	// ErrClosed is returned when acquiring from a closed pool or registry.
	ErrClosed = errors.New("resourcepool: pool is closed")
	// ErrInvalidConfig is returned by New for inconsistent sizes.
	ErrInvalidConfig = errors.New("resourcepool: invalid pool configuration")
)

func waitError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %w", ErrInterrupted, err)
}

func factoryError(key Key, err error) error {
	return fmt.Errorf("%w for %s: %w", ErrFactoryFailed, key, err)
}
