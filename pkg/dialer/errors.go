package dialer

import (
	"errors"
	"net"
	"syscall"
)

var (
	ErrUnknownTarget   = errors.New("dialer: unknown target")
	ErrInvalidTarget   = errors.New("dialer: invalid target")
	ErrDuplicateTarget = errors.New("dialer: duplicate target")
)

func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}
