// Package resourcepool keeps a bounded, lazily grown set of interchangeable resources per key.
//
// Resources are created on demand by a Factory, handed out one caller at a time and either kept
// idle or closed when returned, depending on the preferred size. Acquire blocks while the pool is
// at its maximum size and no resource is idle.
package resourcepool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/slices"
)

type ResourcePool struct {
	key              Key
	factory          Factory
	initialSize      int
	preferredSize    int
	maximumSize      int
	unlockedCreation bool
	onEmpty          func(*ResourcePool)
	log              *slog.Logger

	mx      chanMutex
	cond    *sync.Cond
	entries []*PooledResource
	pending int
	warmed  bool
	closed  bool
	waiting int
	counters
}

type counters struct {
	created         uint64
	destroyed       uint64
	acquired        uint64
	timeouts        uint64
	factoryFailures uint64
}

func New(key Key, factory Factory, options ...Option) (*ResourcePool, error) {
	config := defaultConfig()
	for _, option := range options {
		option(config)
	}

	if factory == nil {
		return nil, fmt.Errorf("%w: factory is required", ErrInvalidConfig)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	p := &ResourcePool{
		key:              key,
		factory:          factory,
		initialSize:      config.initialSize,
		preferredSize:    config.preferredSize,
		maximumSize:      config.maximumSize,
		unlockedCreation: config.unlockedCreation,
		onEmpty:          config.onEmpty,
		log:              config.log.With("pool", key.String()),
		mx:               newChanMutex(),
		warmed:           config.initialSize == 0,
	}
	p.cond = sync.NewCond(p.mx)

	return p, nil
}

func (p *ResourcePool) Key() Key {
	return p.key
}

// Acquire returns a resource on loan. It reuses an idle resource, creates a new one when there is
// room, or waits until one is released or removed. timeout <= 0 relies on ctx alone.
func (p *ResourcePool) Acquire(ctx context.Context, timeout time.Duration) (*PooledResource, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	p.mx.Lock()
	defer p.mx.Unlock()

	if p.closed {
		return nil, ErrClosed
	}

	if err := ctx.Err(); err != nil {
		return nil, waitError(err)
	}

	// Cond.Wait can not select on a channel, so wake every waiter once the context ends.
	stop := context.AfterFunc(ctx, func() {
		p.mx.Lock()
		p.cond.Broadcast()
		p.mx.Unlock()
	})
	defer stop()

	for {
		if p.closed {
			return nil, ErrClosed
		}

		r, err := p.tryAcquireIdleLocked(ctx)
		if err != nil || r != nil {
			return r, err
		}

		r, err = p.createIfRoomLocked(ctx)
		if err != nil || r != nil {
			return r, err
		}

		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				p.timeouts++
			}
			return nil, waitError(err)
		}

		p.waiting++
		p.cond.Wait()
		p.waiting--
	}
}

// tryAcquireIdleLocked never blocks on other callers. While warming up it creates resources
// instead of reusing idle ones.
func (p *ResourcePool) tryAcquireIdleLocked(ctx context.Context) (*PooledResource, error) {
	if !p.warmed {
		if len(p.entries)+p.pending < p.initialSize {
			r, err := p.createLocked(ctx)
			if len(p.entries) >= p.initialSize {
				p.warmed = true
			}
			return r, err
		}
		p.warmed = true
	}

	if p.preferredSize > 0 && len(p.entries)+p.pending < p.preferredSize {
		return nil, nil
	}

	for _, r := range p.entries {
		if r.state == Idle {
			r.state = Busy
			r.useCount++
			p.acquired++
			return r, nil
		}
	}

	return nil, nil
}

// createIfRoomLocked returns nil without error when the pool is full.
func (p *ResourcePool) createIfRoomLocked(ctx context.Context) (*PooledResource, error) {
	if p.maximumSize > 0 && len(p.entries)+p.pending >= p.maximumSize {
		return nil, nil
	}

	return p.createLocked(ctx)
}

func (p *ResourcePool) createLocked(ctx context.Context) (*PooledResource, error) {
	var (
		handle io.Closer
		err    error
	)

	if p.unlockedCreation {
		p.pending++
		p.mx.Unlock()
		handle, err = p.create(ctx)
		p.mx.Lock()
		p.pending--

		if err == nil && p.closed {
			p.cond.Broadcast()
			p.mx.Unlock()
			p.closeHandle(handle)
			p.mx.Lock()
			return nil, ErrClosed
		}
	} else {
		handle, err = p.create(ctx)
	}

	if err != nil {
		p.factoryFailures++
		// The reserved slot, if any, is free again.
		p.cond.Broadcast()
		return nil, factoryError(p.key, err)
	}

	now := time.Now()
	r := &PooledResource{
		handle:    handle,
		pool:      p,
		state:     Busy,
		createdAt: now,
		lastUsed:  now,
		useCount:  1,
	}
	p.entries = append(p.entries, r)
	p.created++
	p.acquired++

	p.log.Debug("resource created", "size", len(p.entries))

	return r, nil
}

func (p *ResourcePool) create(ctx context.Context) (io.Closer, error) {
	handle, err := p.factory.Create(ctx, p.key)
	if err != nil {
		return nil, err
	}

	if handle == nil {
		return nil, errors.New("factory returned a nil resource")
	}

	return handle, nil
}

// Release returns a resource to the pool. It is closed instead of kept when the pool is closed or
// above its preferred size. It reports false when the pool no longer knows the resource or the
// resource is not on loan.
func (p *ResourcePool) Release(r *PooledResource) bool {
	if r == nil {
		return false
	}

	p.mx.Lock()

	i := slices.Index(p.entries, r)
	if i < 0 || r.state != Busy {
		p.mx.Unlock()
		return false
	}

	if p.closed || (p.preferredSize > 0 && len(p.entries) > p.preferredSize) {
		p.removeAtLocked(i)
		empty := p.emptyLocked()
		p.cond.Broadcast()
		p.mx.Unlock()

		p.closeHandle(r.handle)
		if empty {
			p.notifyEmpty()
		}

		return true
	}

	r.state = Idle
	r.lastUsed = time.Now()
	p.cond.Broadcast()
	p.mx.Unlock()

	return true
}

// Remove forgets a resource whatever its state, e.g. after the caller found it broken.
// Closing the handle stays with the caller.
func (p *ResourcePool) Remove(r *PooledResource) bool {
	if r == nil {
		return false
	}

	p.mx.Lock()

	i := slices.Index(p.entries, r)
	if i < 0 {
		p.mx.Unlock()
		return false
	}

	p.removeAtLocked(i)
	empty := p.emptyLocked()
	p.cond.Broadcast()
	p.mx.Unlock()

	if empty {
		p.notifyEmpty()
	}

	return true
}

// ExpireIdleSince closes idle resources last used before threshold and reports whether the
// pool is empty afterwards. Busy resources are left alone.
func (p *ResourcePool) ExpireIdleSince(threshold time.Time) bool {
	p.mx.Lock()

	expired := p.expireLocked(func(r *PooledResource) bool {
		return r.lastUsed.Before(threshold)
	})
	empty := p.emptyLocked()
	if len(expired) > 0 {
		p.cond.Broadcast()
	}

	p.mx.Unlock()

	_ = p.closeAll(expired)

	if empty && len(expired) > 0 {
		p.notifyEmpty()
	}

	return empty
}

// Close stops the pool for good. Idle resources are closed now and busy ones when released.
func (p *ResourcePool) Close() error {
	p.mx.Lock()

	if p.closed {
		p.mx.Unlock()
		return nil
	}

	p.closed = true
	expired := p.expireLocked(func(*PooledResource) bool { return true })
	p.cond.Broadcast()

	p.mx.Unlock()

	p.log.Debug("pool closed", "expired", len(expired))

	return p.closeAll(expired)
}

// TryLock takes the pool lock, waiting at most timeout. Every pool operation blocks until Unlock.
func (p *ResourcePool) TryLock(timeout time.Duration) bool {
	return p.mx.lockUntil(time.Now().Add(timeout))
}

func (p *ResourcePool) Unlock() {
	p.mx.Unlock()
}

func (p *ResourcePool) Len() int {
	p.mx.Lock()
	defer p.mx.Unlock()

	return len(p.entries)
}

// isEmpty reports whether the pool owns no resources and has no creation in flight.
func (p *ResourcePool) isEmpty() bool {
	p.mx.Lock()
	defer p.mx.Unlock()

	return p.emptyLocked()
}

func (p *ResourcePool) emptyLocked() bool {
	return len(p.entries)+p.pending == 0
}

func (p *ResourcePool) IsClosed() bool {
	p.mx.Lock()
	defer p.mx.Unlock()

	return p.closed
}

func (p *ResourcePool) expireLocked(match func(*PooledResource) bool) []io.Closer {
	var expired []io.Closer

	kept := p.entries[:0]
	for _, r := range p.entries {
		if r.state == Idle && match(r) {
			r.state = Expired
			p.destroyed++
			expired = append(expired, r.handle)
			continue
		}
		kept = append(kept, r)
	}

	clear(p.entries[len(kept):])
	p.entries = kept

	return expired
}

func (p *ResourcePool) removeAtLocked(i int) {
	p.entries[i].state = Expired
	p.entries = slices.Delete(p.entries, i, i+1)
	p.destroyed++
}

func (p *ResourcePool) notifyEmpty() {
	if p.onEmpty != nil {
		p.onEmpty(p)
	}
}

func (p *ResourcePool) closeHandle(handle io.Closer) {
	if err := handle.Close(); err != nil {
		p.log.Warn("failed to close resource", "error", err)
	}
}

func (p *ResourcePool) closeAll(handles []io.Closer) error {
	var merr *multierror.Error
	for _, h := range handles {
		if err := h.Close(); err != nil {
			p.log.Warn("failed to close resource", "error", err)
			merr = multierror.Append(merr, err)
		}
	}

	return merr.ErrorOrNil()
}
