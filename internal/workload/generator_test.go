package workload

import (
	"sync"
	"testing"
	"time"
)

func TestGeneratorProducesJobsAtConfiguredInterval(t *testing.T) {
	var mu sync.Mutex
	var messages []string

	g := NewGenerator(1, 10*time.Millisecond, 20*time.Millisecond, func(m string) {
		mu.Lock()
		messages = append(messages, m)
		mu.Unlock()
	})

	go g.Run()
	time.Sleep(100 * time.Millisecond)
	g.Stop()
	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(messages) == 0 {
		t.Fail()
	}
}

func TestGeneratorStopsPromptly(t *testing.T) {
	g := NewGenerator(1, time.Hour, time.Hour, func(string) {})

	done := make(chan struct{})
	go func() {
		g.Run()
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	g.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fail()
	}
}
