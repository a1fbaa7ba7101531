package resourcepool

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultMaxPools = 1024
	// An acquire racing with the discard of its pool gets a fresh pool this many times.
	maxRetiredRetries = 3
)

type RegistryConfig struct {
	poolOptions     []Option
	keyOptions      map[Key][]Option
	maxPools        int
	acquireTimeout  time.Duration
	idleTimeout     time.Duration
	onCreateFailure func(ctx context.Context, key Key, err error)
	log             *slog.Logger
}

type RegistryOption func(*RegistryConfig)

func defaultRegistryConfig() *RegistryConfig {
	return &RegistryConfig{
		keyOptions:  make(map[Key][]Option),
		maxPools:    defaultMaxPools,
		idleTimeout: 5 * time.Minute,
		log:         slog.Default(),
	}
}

// WithPoolOptions applies to every pool the registry creates.
func WithPoolOptions(options ...Option) RegistryOption {
	return func(c *RegistryConfig) {
		c.poolOptions = append(c.poolOptions, options...)
	}
}

// WithKeyOptions applies after the shared pool options, only for key.
func WithKeyOptions(key Key, options ...Option) RegistryOption {
	return func(c *RegistryConfig) {
		c.keyOptions[key] = append(c.keyOptions[key], options...)
	}
}

// WithMaxPools bounds how many pools are tracked. The least recently used pool is closed when exceeded.
func WithMaxPools(maxPools int) RegistryOption {
	return func(c *RegistryConfig) {
		c.maxPools = maxPools
	}
}

func WithAcquireTimeout(timeout time.Duration) RegistryOption {
	return func(c *RegistryConfig) {
		c.acquireTimeout = timeout
	}
}

// WithIdleTimeout is the idle age after which Start's sweep closes resources.
func WithIdleTimeout(timeout time.Duration) RegistryOption {
	return func(c *RegistryConfig) {
		c.idleTimeout = timeout
	}
}

// WithCreateFailureHandler is called after Acquire failed because the factory did.
func WithCreateFailureHandler(fn func(ctx context.Context, key Key, err error)) RegistryOption {
	return func(c *RegistryConfig) {
		c.onCreateFailure = fn
	}
}

func WithRegistryLogger(log *slog.Logger) RegistryOption {
	return func(c *RegistryConfig) {
		c.log = log
	}
}

// Registry maps keys to pools. Pools are created on first use and discarded once they are empty.
type Registry struct {
	factory Factory
	config  *RegistryConfig
	log     *slog.Logger

	mx      sync.Mutex
	pools   *lru.Cache[Key, *ResourcePool]
	evicted []*ResourcePool
	closed  bool
}

func NewRegistry(factory Factory, options ...RegistryOption) (*Registry, error) {
	config := defaultRegistryConfig()
	for _, option := range options {
		option(config)
	}

	if config.log == nil {
		config.log = slog.Default()
	}

	r := &Registry{
		factory: factory,
		config:  config,
		log:     config.log,
	}

	// The eviction callback runs while r.mx is held; closing happens after unlocking.
	pools, err := lru.NewWithEvict(config.maxPools, func(_ Key, p *ResourcePool) {
		r.evicted = append(r.evicted, p)
	})
	if err != nil {
		return nil, err
	}
	r.pools = pools

	return r, nil
}

// Pool returns the pool for key, creating it when missing.
func (r *Registry) Pool(key Key) (*ResourcePool, error) {
	r.mx.Lock()

	if r.closed {
		r.mx.Unlock()
		return nil, ErrClosed
	}

	if p, ok := r.pools.Get(key); ok {
		r.mx.Unlock()
		return p, nil
	}

	options := make([]Option, 0, len(r.config.poolOptions)+len(r.config.keyOptions[key])+2)
	options = append(options, WithLogger(r.log))
	options = append(options, r.config.poolOptions...)
	options = append(options, r.config.keyOptions[key]...)
	options = append(options, WithOnEmpty(func(p *ResourcePool) { r.discard(p) }))

	p, err := New(key, r.factory, options...)
	if err != nil {
		r.mx.Unlock()
		return nil, err
	}

	r.pools.Add(key, p)
	evicted := r.takeEvictedLocked()
	r.mx.Unlock()

	_ = r.closePools(evicted)
	r.log.Debug("pool registered", "pool", key.String())

	return p, nil
}

// Acquire takes a resource from the pool for key, waiting at most the configured acquire timeout.
func (r *Registry) Acquire(ctx context.Context, key Key) (*PooledResource, error) {
	for attempt := 0; ; attempt++ {
		p, err := r.Pool(key)
		if err != nil {
			return nil, err
		}

		res, err := p.Acquire(ctx, r.config.acquireTimeout)
		if errors.Is(err, ErrClosed) && attempt < maxRetiredRetries && !r.isClosed() {
			continue
		}

		if errors.Is(err, ErrFactoryFailed) && r.config.onCreateFailure != nil {
			r.config.onCreateFailure(ctx, key, err)
		}

		return res, err
	}
}

func (r *Registry) Release(res *PooledResource) bool {
	if res == nil {
		return false
	}

	return res.pool.Release(res)
}

func (r *Registry) Remove(res *PooledResource) bool {
	if res == nil {
		return false
	}

	return res.pool.Remove(res)
}

// ExpireIdle closes resources idle for longer than maxIdle and discards the pools left empty.
// It returns the number of discarded pools.
func (r *Registry) ExpireIdle(maxIdle time.Duration) int {
	threshold := time.Now().Add(-maxIdle)

	discarded := 0
	for _, p := range r.snapshot() {
		if !p.ExpireIdleSince(threshold) {
			continue
		}

		// The pool may already be gone through its OnEmpty callback.
		r.discard(p)
		if !r.registered(p) {
			discarded++
		}
	}

	return discarded
}

// Start sweeps idle resources on every tick until ctx is done.
func (r *Registry) Start(ctx context.Context, ticker *time.Ticker) {
	r.log.InfoContext(ctx, "Pool sweeper started", "idle_timeout", r.config.idleTimeout)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.ExpireIdle(r.config.idleTimeout); n > 0 {
				r.log.DebugContext(ctx, "discarded empty pools", "count", n)
			}
		}
	}
}

// Retire closes and forgets the pool for key. Resources on loan are closed when released.
func (r *Registry) Retire(key Key) (bool, error) {
	r.mx.Lock()
	ok := r.pools.Remove(key)
	evicted := r.takeEvictedLocked()
	r.mx.Unlock()

	return ok, r.closePools(evicted)
}

func (r *Registry) Stats() []Stats {
	pools := r.snapshot()

	stats := make([]Stats, 0, len(pools))
	for _, p := range pools {
		stats = append(stats, p.Stats())
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Key < stats[j].Key
	})

	return stats
}

func (r *Registry) Len() int {
	r.mx.Lock()
	defer r.mx.Unlock()

	return r.pools.Len()
}

// Close closes every pool. Acquire fails with ErrClosed afterwards.
func (r *Registry) Close() error {
	r.mx.Lock()

	if r.closed {
		r.mx.Unlock()
		return nil
	}

	r.closed = true
	r.pools.Purge()
	evicted := r.takeEvictedLocked()
	r.mx.Unlock()

	return r.closePools(evicted)
}

// discard drops p if it is still the registered pool for its key and still empty, counting
// creations in flight.
func (r *Registry) discard(p *ResourcePool) bool {
	r.mx.Lock()

	current, ok := r.pools.Peek(p.Key())
	if !ok || current != p || !p.isEmpty() {
		r.mx.Unlock()
		return false
	}

	r.pools.Remove(p.Key())
	evicted := r.takeEvictedLocked()
	r.mx.Unlock()

	_ = r.closePools(evicted)
	r.log.Debug("empty pool discarded", "pool", p.Key().String())

	return true
}

func (r *Registry) snapshot() []*ResourcePool {
	r.mx.Lock()
	defer r.mx.Unlock()

	return r.pools.Values()
}

func (r *Registry) registered(p *ResourcePool) bool {
	r.mx.Lock()
	defer r.mx.Unlock()

	current, ok := r.pools.Peek(p.Key())

	return ok && current == p
}

func (r *Registry) isClosed() bool {
	r.mx.Lock()
	defer r.mx.Unlock()

	return r.closed
}

func (r *Registry) takeEvictedLocked() []*ResourcePool {
	evicted := r.evicted
	r.evicted = nil

	return evicted
}

func (r *Registry) closePools(pools []*ResourcePool) error {
	var merr *multierror.Error
	for _, p := range pools {
		if err := p.Close(); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	return merr.ErrorOrNil()
}
