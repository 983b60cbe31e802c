package menu

import (
	"sync"
	"time"
)

// LoadStats summarizes the load attempts made for one path.
type LoadStats struct {
	Path         string
	Successes    int
	Failures     int
	LastKind     Kind // zero after a successful attempt
	LastDuration time.Duration
	total        time.Duration
}

// Attempts returns the number of load attempts recorded.
func (s LoadStats) Attempts() int {
	return s.Successes + s.Failures
}

// AverageDuration returns the mean duration over all attempts.
func (s LoadStats) AverageDuration() time.Duration {
	if s.Attempts() == 0 {
		return 0
	}
	return s.total / time.Duration(s.Attempts())
}

type statsTracker struct {
	mu    sync.RWMutex
	paths map[string]*LoadStats
}

func newStatsTracker() *statsTracker {
	return &statsTracker{paths: make(map[string]*LoadStats)}
}

func (st *statsTracker) record(path string, d time.Duration, err *ConfigError) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.paths[path]
	if !ok {
		s = &LoadStats{Path: path}
		st.paths[path] = s
	}

	s.LastDuration = d
	s.total += d
	if err != nil {
		s.Failures++
		s.LastKind = err.Kind
		return
	}
	s.Successes++
	s.LastKind = 0
}

func (st *statsTracker) get(path string) (LoadStats, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.paths[path]
	if !ok {
		return LoadStats{}, false
	}
	return *s, true
}

func (st *statsTracker) all() []LoadStats {
	st.mu.RLock()
	defer st.mu.RUnlock()

	result := make([]LoadStats, 0, len(st.paths))
	for _, s := range st.paths {
		result = append(result, *s)
	}
	return result
}

func (st *statsTracker) reset() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.paths = make(map[string]*LoadStats)
}

// Stats returns the recorded attempts for path.
func (l *Loader) Stats(path string) (LoadStats, bool) {
	return l.stats.get(path)
}

// AllStats returns the recorded attempts for every path, in no fixed order.
func (l *Loader) AllStats() []LoadStats {
	return l.stats.all()
}

func (l *Loader) ResetStats() {
	l.stats.reset()
}
