package resourcepool

import "time"

// chanMutex is a sync.Locker that also supports a bounded wait.
type chanMutex chan struct{}

func newChanMutex() chanMutex {
	return make(chanMutex, 1)
}

func (m chanMutex) Lock() {
	m <- struct{}{}
}

func (m chanMutex) Unlock() {
	select {
	case <-m:
	default:
		panic("resourcepool: unlock of unlocked mutex")
	}
}

// lockUntil waits for the lock no later than deadline. A single timer is armed so the
// total wait never exceeds the deadline.
func (m chanMutex) lockUntil(deadline time.Time) bool {
	select {
	case m <- struct{}{}:
		return true
	default:
	}

	remaining := time.Until(deadline)
	if remaining <= 0 {
		return false
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case m <- struct{}{}:
		return true
	case <-timer.C:
		return false
	}
}
