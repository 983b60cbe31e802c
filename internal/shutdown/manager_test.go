package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShutdownReverseOrder(t *testing.T) {
	m := NewManager(nil)

	var mu sync.Mutex
	var order []string
	record := func(name string) Func {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}
	m.Register("loader", record("loader"))
	m.Register("view", record("view"))
	m.Register("app", record("app"))

	m.Shutdown()

	assert.Equal(t, []string{"app", "view", "loader"}, order)
	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownRunsOnce(t *testing.T) {
	m := NewManager(nil)

	calls := 0
	m.Register("counter", Func(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
}

func TestShutdownTimeoutDoesNotBlock(t *testing.T) {
	m := NewManager(nil)
	m.SetTimeout(20 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)
	m.Register("stuck", Func(func() { <-release }))

	reached := false
	m.Register("after", Func(func() {}))
	m.Register("first", Func(func() { reached = true }))

	start := time.Now()
	m.Shutdown()

	assert.True(t, reached)
	assert.Less(t, time.Since(start), 2*time.Second)
}
