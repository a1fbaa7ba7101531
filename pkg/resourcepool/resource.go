package resourcepool

import (
	"io"
	"time"
)

type State int

const (
	Idle State = iota
	Busy
	Expired
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Busy:
		return "busy"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// PooledResource is a handle on loan from a ResourcePool. All fields are guarded by the pool lock.
type PooledResource struct {
	handle    io.Closer
	pool      *ResourcePool
	state     State
	createdAt time.Time
	lastUsed  time.Time
	useCount  int64
}

// Value returns the underlying handle. It must not be used after the resource is released or removed.
func (r *PooledResource) Value() io.Closer {
	return r.handle
}

func (r *PooledResource) Key() Key {
	return r.pool.key
}

func (r *PooledResource) CreationTime() time.Time {
	return r.createdAt
}

// State reads the current state under the pool lock.
func (r *PooledResource) State() State {
	r.pool.mx.Lock()
	defer r.pool.mx.Unlock()

	return r.state
}

// UseCount reports how many times the resource has been checked out.
func (r *PooledResource) UseCount() int64 {
	r.pool.mx.Lock()
	defer r.pool.mx.Unlock()

	return r.useCount
}

// LastUsed is the creation time or the time of the last return to the idle set.
func (r *PooledResource) LastUsed() time.Time {
	r.pool.mx.Lock()
	defer r.pool.mx.Unlock()

	return r.lastUsed
}
