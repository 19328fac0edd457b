package auth

import (
	"sync"
	"time"
)

// Countdown counts a duration down in fixed ticks on its own goroutine.
// It stops by itself at zero, or earlier when Stop is called.
type Countdown struct {
	mu        sync.Mutex
	remaining time.Duration
	stop      chan struct{}
	done      chan struct{}
	stopOnce  sync.Once
}

// StartCountdown starts counting total down by tick.
func StartCountdown(total, tick time.Duration) *Countdown {
	c := &Countdown{
		remaining: total,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	if total <= 0 {
		c.remaining = 0
		close(c.done)
		return c
	}
	go c.run(tick)
	return c
}

func (c *Countdown) run(tick time.Duration) {
	defer close(c.done)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			c.remaining -= tick
			if c.remaining < 0 {
				c.remaining = 0
			}
			finished := c.remaining == 0
			c.mu.Unlock()
			if finished {
				return
			}
		}
	}
}

// Remaining returns the time left. It is frozen once the countdown is stopped.
func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Expired reports whether the countdown reached zero.
func (c *Countdown) Expired() bool {
	return c.Remaining() == 0
}

// Done is closed when the goroutine exits, either at zero or after Stop.
func (c *Countdown) Done() <-chan struct{} {
	return c.done
}

// Stop ends the countdown. It is safe to call more than once.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
	<-c.done
}
