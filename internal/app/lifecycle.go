package app

import (
	"sync"

	"admin-panel/internal/logger"
)

type release struct {
	name string
	fn   func()
}

// Lifecycle collects the release funcs of subscriptions made by the
// application and runs them once, newest first.
type Lifecycle struct {
	mu         sync.Mutex
	releases   []release
	logger     logger.Logger
	isShutdown bool
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Lifecycle{logger: log}
}

// Track registers fn to run at shutdown. After shutdown it runs immediately.
func (l *Lifecycle) Track(name string, fn func()) {
	l.mu.Lock()
	if l.isShutdown {
		l.mu.Unlock()
		fn()
		return
	}
	l.releases = append(l.releases, release{name: name, fn: fn})
	l.mu.Unlock()
}

func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	if l.isShutdown {
		l.mu.Unlock()
		return
	}
	l.isShutdown = true
	releases := l.releases
	l.releases = nil
	l.mu.Unlock()

	l.logger.Info("Lifecycle", "shutdown sequence initiated", map[string]interface{}{
		"releases": len(releases),
	})

	for i := len(releases) - 1; i >= 0; i-- {
		releases[i].fn()
		l.logger.Debug("Lifecycle", "released", map[string]interface{}{
			"name": releases[i].name,
		})
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}

func (l *Lifecycle) IsShutdown() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isShutdown
}
