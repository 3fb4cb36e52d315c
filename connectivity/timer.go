package connectivity

import (
	"sync"
	"time"
)

type lastSuccess struct {
	at time.Time
	mu sync.RWMutex
}

func (t *lastSuccess) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.at = time.Now()
}

// Elapsed returns zero if there has never been a success.
func (t *lastSuccess) Elapsed() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.at.IsZero() {
		return 0
	}
	return time.Since(t.at)
}
