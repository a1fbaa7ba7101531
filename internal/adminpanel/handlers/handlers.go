package handlers

//go:generate mockgen -source=./handlers.go -destination=./handlers_mock.go -package=handlers PoolMaintainer

import (
	"time"

	"github.com/javi11/poolkeeper/pkg/resourcepool"
)

// PoolMaintainer is the part of the pool registry the admin API can act on.
type PoolMaintainer interface {
	ExpireIdle(maxIdle time.Duration) int
	Retire(key resourcepool.Key) (bool, error)
}
