// Package clock implements Lamport's logical clock: a thread-safe,
// monotonically increasing counter used to order events across peers that
// share no common real-time clock.
package clock

import "sync"

// Clock is a Lamport logical clock. The zero value is ready to use, seeded
// at 0.
type Clock struct {
	mu   sync.Mutex
	time uint64
}

// New returns a Clock starting at 0.
func New() *Clock {
	return &Clock{}
}

// Tick advances the clock by one for a local event and returns the new
// value.
func (c *Clock) Tick() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.time++
	return c.time
}

// SendEvent advances the clock before a message is sent. It is identical to
// Tick; the separate name documents intent at call sites.
func (c *Clock) SendEvent() uint64 {
	return c.Tick()
}

// ReceiveEvent merges the clock with a timestamp carried on an incoming
// message: local = max(local, received) + 1. It returns the new value.
func (c *Clock) ReceiveEvent(received uint64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if received > c.time {
		c.time = received
	}
	c.time++
	return c.time
}

// Get returns the current value without advancing the clock.
func (c *Clock) Get() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.time
}
