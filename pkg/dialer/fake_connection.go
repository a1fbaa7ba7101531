package dialer

import (
	"io"
	"net"
	"sync/atomic"
	"time"
)

type fakeConnection struct {
	target    Target
	createdAt time.Time
	closed    atomic.Bool
}

func NewFakeConnection(target Target) Connection {
	return &fakeConnection{
		target:    target,
		createdAt: time.Now(),
	}
}

func (c *fakeConnection) Read(_ []byte) (int, error) {
	if c.closed.Load() {
		return 0, net.ErrClosed
	}
	return 0, io.EOF
}

func (c *fakeConnection) Write(b []byte) (int, error) {
	if c.closed.Load() {
		return 0, net.ErrClosed
	}
	return len(b), nil
}

func (c *fakeConnection) Close() error {
	if c.closed.Swap(true) {
		return net.ErrClosed
	}
	return nil
}

func (c *fakeConnection) Target() Target {
	return c.target
}

func (c *fakeConnection) CreationTime() time.Time {
	return c.createdAt
}
