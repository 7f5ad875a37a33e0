package auth

import (
	"fmt"
	"sync"
	"time"
)

// Countdown tracks the time left before a verification code may be resent.
// Start is idempotent while a countdown is running, so a second dispatch
// cannot shorten or restart the window.
type Countdown struct {
	mu        sync.Mutex
	duration  time.Duration
	interval  time.Duration
	remaining time.Duration
	running   bool
	stop      chan struct{}
	onTick    func(remaining time.Duration)
	onDone    func()
}

// NewCountdown creates a countdown of the given duration, ticking at the
// given interval. A non-positive interval falls back to one second.
func NewCountdown(duration, interval time.Duration) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}

	return &Countdown{
		duration: duration,
		interval: interval,
	}
}

// OnTick registers a callback invoked with the remaining time after every tick.
func (c *Countdown) OnTick(fn func(remaining time.Duration)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.onTick = fn
}

// OnDone registers a callback invoked when the countdown reaches zero.
func (c *Countdown) OnDone(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.onDone = fn
}

// Start begins the countdown. It reports false and changes nothing when
// a countdown is already running.
func (c *Countdown) Start() bool {
	c.mu.Lock()

	if c.running {
		c.mu.Unlock()

		return false
	}

	c.running = true
	c.remaining = c.duration
	stop := make(chan struct{})
	c.stop = stop

	c.mu.Unlock()

	go c.run(stop)

	return true
}

// Stop cancels a running countdown and resets the remaining time.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}

	c.running = false
	c.remaining = 0
	close(c.stop)
}

// Active reports whether a countdown is currently running.
func (c *Countdown) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.running
}

// Remaining returns the time left, zero when no countdown is running.
func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.remaining
}

// idleLabel is the resend display when no countdown is running.
const idleLabel = "Send code"

// Label renders the remaining time as whole seconds, e.g. "42s", while
// the countdown is running, and the send-code label otherwise.
func (c *Countdown) Label() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return idleLabel
	}

	seconds := int((c.remaining + time.Second - 1) / time.Second)

	return fmt.Sprintf("%ds", seconds)
}

func (c *Countdown) run(stop chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.mu.Lock()

			if !c.running {
				c.mu.Unlock()

				return
			}

			c.remaining -= c.interval
			if c.remaining < 0 {
				c.remaining = 0
			}

			var (
				remaining = c.remaining
				tick      = c.onTick
				done      = c.onDone
				finished  = c.remaining == 0
			)

			if finished {
				c.running = false
			}

			c.mu.Unlock()

			if tick != nil {
				tick(remaining)
			}

			if finished {
				if done != nil {
					done()
				}

				return
			}
		}
	}
}
