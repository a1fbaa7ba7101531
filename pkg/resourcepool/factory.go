//go:generate mockgen -source=./factory.go -destination=./factory_mock.go -package=resourcepool Factory

package resourcepool

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"strings"
)

// Key identifies the set of interchangeable resources held by one pool.
type Key string

// NewKey derives a stable key from the parts identifying a target, e.g. name, host and port.
func NewKey(parts ...string) Key {
	hash := md5.Sum([]byte(strings.Join(parts, "-")))

	return Key(hex.EncodeToString(hash[:]))
}

func (k Key) String() string {
	return string(k)
}

// Factory creates the resources held by a pool. The context carries the acquire deadline.
type Factory interface {
	Create(ctx context.Context, key Key) (io.Closer, error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(ctx context.Context, key Key) (io.Closer, error)

func (f FactoryFunc) Create(ctx context.Context, key Key) (io.Closer, error) {
	return f(ctx, key)
}
