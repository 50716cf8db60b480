// Package workload drives a peer's print-job generation: a timer that
// triggers a fresh job at a random interval, polling frequently enough to
// shut down promptly. Spec.md treats job generation as an external
// collaborator; this package supplies the concrete reference behavior
// found in the original client's automatic job generator.
package workload

import (
	"fmt"
	"math/rand"
	"time"
)

// Generator periodically invokes Execute with a freshly numbered job
// message. Run starts each Execute call in a new goroutine and does not
// wait for it, so jobs can overlap (the peer layer decides whether to drop
// a job generated while the previous one is still outstanding).
type Generator struct {
	ClientID   int32
	IntervalMin time.Duration
	IntervalMax time.Duration
	Execute    func(messageContent string)

	counter int
	stop    chan struct{}
}

// NewGenerator constructs a Generator. intervalMin must be <= intervalMax.
func NewGenerator(clientID int32, intervalMin, intervalMax time.Duration, execute func(string)) *Generator {
	return &Generator{
		ClientID:    clientID,
		IntervalMin: intervalMin,
		IntervalMax: intervalMax,
		Execute:     execute,
		stop:        make(chan struct{}),
	}
}

// Run blocks, generating jobs until Stop is called. It is meant to be
// launched in its own goroutine.
func (g *Generator) Run() {
	for {
		interval := g.randomInterval()

		var waited time.Duration
		const pollSlice = 500 * time.Millisecond
		for waited < interval {
			slice := pollSlice
			if remaining := interval - waited; remaining < slice {
				slice = remaining
			}
			select {
			case <-g.stop:
				return
			case <-time.After(slice):
			}
			waited += slice
		}

		select {
		case <-g.stop:
			return
		default:
		}

		g.counter++
		message := fmt.Sprintf("Documento #%d do cliente %d", g.counter, g.ClientID)
		go g.Execute(message)
	}
}

// Stop halts the generator. It is safe to call at most once.
func (g *Generator) Stop() {
	close(g.stop)
}

func (g *Generator) randomInterval() time.Duration {
	if g.IntervalMax <= g.IntervalMin {
		return g.IntervalMin
	}
	span := g.IntervalMax - g.IntervalMin
	return g.IntervalMin + time.Duration(rand.Int63n(int64(span)))
}
