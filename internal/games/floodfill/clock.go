package floodfill

import (
	"context"
	"sync"
	"time"
)

// DefaultTickInterval is how often the score counts down.
const DefaultTickInterval = time.Second

// Clock drives Session.Tick on a fixed interval from its own goroutine.
// Stop (or cancelling the context passed to StartClock) ends it.
type Clock struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// StartClock ticks s every interval until ctx is done or Stop is called.
// onTick, if set, is called after every tick that changed the session.
func StartClock(ctx context.Context, s *Session, interval time.Duration, onTick func(TickResult)) *Clock {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ctx, cancel := context.WithCancel(ctx)
	c := &Clock{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(c.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				res, err := s.Tick()
				if err != nil || !res.Running {
					continue
				}
				if onTick != nil {
					onTick(res)
				}
			}
		}
	}()

	return c
}

// Stop halts the clock and waits for its goroutine to exit.
// It is safe to call more than once.
func (c *Clock) Stop() {
	c.once.Do(c.cancel)
	<-c.done
}

// Done is closed once the clock has stopped.
func (c *Clock) Done() <-chan struct{} {
	return c.done
}
