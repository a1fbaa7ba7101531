// Package dialer opens plain TCP connections to configured targets and serves them as pool resources.
package dialer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/javi11/poolkeeper/pkg/resourcepool"
	"golang.org/x/net/proxy"
)

type Dialer interface {
	resourcepool.Factory
	Targets() []Target
	Target(key resourcepool.Key) (Target, bool)
}

type dialer struct {
	targets         map[resourcepool.Key]Target
	ordered         []Target
	timeout         time.Duration
	maxRetries      uint
	retryDelay      time.Duration
	fakeConnections bool
	log             *slog.Logger
}

func New(options ...Option) (Dialer, error) {
	config := defaultConfig()
	for _, option := range options {
		option(config)
	}

	d := &dialer{
		targets:         make(map[resourcepool.Key]Target, len(config.targets)),
		timeout:         config.timeout,
		maxRetries:      config.maxRetries,
		retryDelay:      config.retryDelay,
		fakeConnections: config.fakeConnections,
		log:             config.log,
	}

	for _, target := range config.targets {
		if target.Host == "" || target.Port <= 0 {
			return nil, fmt.Errorf("%w: host and port are required, got %q:%d", ErrInvalidTarget, target.Host, target.Port)
		}

		if target.Id == "" {
			target.Id = uuid.New().String()
		}

		if target.Name == "" {
			target.Name = target.Host
		}

		key := target.Key()
		if _, ok := d.targets[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTarget, target)
		}

		d.targets[key] = target
		d.ordered = append(d.ordered, target)
	}

	return d, nil
}

// Create dials the target registered under key, retrying timeouts and transient network errors.
func (d *dialer) Create(ctx context.Context, key resourcepool.Key) (io.Closer, error) {
	target, ok := d.targets[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, key)
	}

	if d.fakeConnections {
		return NewFakeConnection(target), nil
	}

	var conn net.Conn
	err := retry.Do(
		func() error {
			c, err := d.dial(ctx, target)
			if err != nil {
				return err
			}

			conn = c
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(d.maxRetries+1),
		retry.Delay(d.retryDelay),
		retry.RetryIf(IsRetryableError),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			d.log.DebugContext(ctx, fmt.Sprintf("failed to connect to %s, retrying", target), "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return nil, err
	}

	d.log.DebugContext(ctx, fmt.Sprintf("connected to %s", target))

	return newConnection(conn, target), nil
}

func (d *dialer) dial(ctx context.Context, target Target) (net.Conn, error) {
	direct := &net.Dialer{Timeout: d.timeout}

	if target.ProxyURL == "" {
		return direct.DialContext(ctx, "tcp", target.Address())
	}

	u, err := url.Parse(target.ProxyURL)
	if err != nil {
		return nil, fmt.Errorf("%w: bad proxy url for %s: %w", ErrInvalidTarget, target, err)
	}

	pd, err := proxy.FromURL(u, direct)
	if err != nil {
		return nil, fmt.Errorf("%w: unsupported proxy for %s: %w", ErrInvalidTarget, target, err)
	}

	if cd, ok := pd.(proxy.ContextDialer); ok {
		return cd.DialContext(ctx, "tcp", target.Address())
	}

	return pd.Dial("tcp", target.Address())
}

func (d *dialer) Targets() []Target {
	targets := make([]Target, len(d.ordered))
	copy(targets, d.ordered)

	return targets
}

func (d *dialer) Target(key resourcepool.Key) (Target, bool) {
	target, ok := d.targets[key]

	return target, ok
}
