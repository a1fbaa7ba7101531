package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/javi11/poolkeeper/internal/config"
	"github.com/javi11/poolkeeper/internal/failurelog"
	"github.com/javi11/poolkeeper/pkg/dialer"
	"github.com/javi11/poolkeeper/pkg/resourcepool"
)

func newDialer(config *config.Config, log *slog.Logger) (dialer.Dialer, error) {
	targets := make([]dialer.Target, 0, len(config.Targets))
	for _, t := range config.Targets {
		targets = append(targets, dialer.Target{
			Id:             t.Id,
			Name:           t.Name,
			Host:           t.Host,
			Port:           t.Port,
			ProxyURL:       t.ProxyURL,
			MaxConnections: t.MaxConnections,
		})
	}

	return dialer.New(
		dialer.WithTargets(targets),
		dialer.WithTimeout(config.Dialer.Timeout),
		dialer.WithMaxRetries(config.Dialer.MaxRetries),
		dialer.WithRetryDelay(config.Dialer.RetryDelay),
		dialer.WithFakeConnections(config.Dialer.FakeConnections),
		dialer.WithLogger(log),
	)
}

// newRegistry builds one pool per target. Creation failures are journaled when failures is not nil.
func newRegistry(
	config *config.Config,
	d dialer.Dialer,
	failures failurelog.FailureLog,
	log *slog.Logger,
) (*resourcepool.Registry, error) {
	options := []resourcepool.RegistryOption{
		resourcepool.WithPoolOptions(
			resourcepool.WithInitialSize(config.Pool.InitialSize),
			resourcepool.WithPreferredSize(config.Pool.PreferredSize),
			resourcepool.WithMaximumSize(config.Pool.MaximumSize),
			resourcepool.WithUnlockedCreation(config.Pool.UnlockedCreation),
		),
		resourcepool.WithMaxPools(config.Pool.MaxPools),
		resourcepool.WithAcquireTimeout(config.Pool.AcquireTimeout),
		resourcepool.WithIdleTimeout(config.Pool.IdleTimeout),
		resourcepool.WithRegistryLogger(log),
	}

	for _, t := range d.Targets() {
		if t.MaxConnections > 0 {
			options = append(options, resourcepool.WithKeyOptions(t.Key(), resourcepool.WithMaximumSize(t.MaxConnections)))
		}
	}

	if failures != nil {
		options = append(options, resourcepool.WithCreateFailureHandler(func(ctx context.Context, key resourcepool.Key, err error) {
			target := key.String()
			if t, ok := d.Target(key); ok {
				target = t.String()
			}

			// The acquire may have been cancelled, the journal entry is still wanted.
			if err := failures.Add(context.WithoutCancel(ctx), key.String(), target, err.Error()); err != nil {
				log.WarnContext(ctx, "Failed to journal factory failure", "pool", key.String(), "err", err)
			}
		}))
	}

	return resourcepool.NewRegistry(d, options...)
}

// warm creates the initial resources of every target flagged for warm-up. Each acquire during
// warm-up creates a resource, so all of them are held before being released.
func warm(ctx context.Context, r *resourcepool.Registry, targets []config.Target, initialSize int, log *slog.Logger) {
	n := max(initialSize, 1)

	for _, t := range targets {
		if !t.Warm {
			continue
		}

		target := dialer.Target{Name: t.Name, Host: t.Host, Port: t.Port}
		if target.Name == "" {
			target.Name = target.Host
		}

		held := make([]*resourcepool.PooledResource, 0, n)
		for i := 0; i < n; i++ {
			res, err := r.Acquire(ctx, target.Key())
			if err != nil {
				log.WarnContext(ctx, fmt.Sprintf("Failed to warm up %s", target), "err", err)
				break
			}
			held = append(held, res)
		}

		for _, res := range held {
			r.Release(res)
		}

		log.InfoContext(ctx, fmt.Sprintf("Warmed up %s", target), "resources", len(held))
	}
}

func purgeFailures(ctx context.Context, failures failurelog.FailureLog, retention time.Duration, ticker *time.Ticker, log *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := failures.Purge(ctx, time.Now().Add(-retention))
			if err != nil && !errors.Is(err, context.Canceled) {
				log.WarnContext(ctx, "Failed to purge factory failures", "err", err)
				continue
			}

			if n > 0 {
				log.DebugContext(ctx, "purged factory failures", "count", n)
			}
		}
	}
}

// probe acquires and releases one resource per target and reports each result to out.
func probe(ctx context.Context, r *resourcepool.Registry, targets []dialer.Target, out io.Writer) error {
	var merr *multierror.Error

	for _, t := range targets {
		start := time.Now()

		res, err := r.Acquire(ctx, t.Key())
		if err != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", t, err)
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", t, err))
			continue
		}

		r.Release(res)
		fmt.Fprintf(out, "OK   %s in %s\n", t, time.Since(start).Round(time.Millisecond))
	}

	return merr.ErrorOrNil()
}
