// Package menu loads, validates and holds the navigation menu tree of the
// admin shell.
//
// A menu file is JSON (comments and trailing commas allowed) or YAML:
//
//	{
//	  "version": "1.0",
//	  "menus": [
//	    {"id": "dashboard", "title": "Dashboard", "route": "/dashboard", "sort": 1},
//	    {"id": "system", "title": "System", "children": [
//	      {"id": "users", "title": "Users", "route": "/system/users", "permissions": ["user:read"]}
//	    ]}
//	  ]
//	}
//
// A Loader owns the last successfully loaded Document. Load replaces it only
// when the new file parses and validates; otherwise the previous document
// stays current and the failure is both returned and broadcast.
package menu

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"admin-panel/internal/eventbus"
	"admin-panel/internal/logger"
)

// DefaultPath is the menu file location relative to the working directory.
var DefaultPath = filepath.Join("resources", "config", "menus.json")

// Event types published on the loader's bus.
const (
	EventMenusLoaded = "menus.loaded"
	EventLoadError   = "menus.load_error"
)

const component = "MenuLoader"

type Option func(*Loader)

// WithDefaultPath overrides the file used by LoadDefault.
func WithDefaultPath(path string) Option {
	return func(l *Loader) {
		l.defaultPath = path
	}
}

func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		l.logger = log
	}
}

// WithBus publishes load events on a shared bus instead of a private one.
func WithBus(bus *eventbus.Bus) Option {
	return func(l *Loader) {
		l.bus = bus
	}
}

type Loader struct {
	defaultPath string
	logger      logger.Logger
	bus         *eventbus.Bus
	current     atomic.Pointer[Document]
	stats       *statsTracker
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{defaultPath: DefaultPath, stats: newStatsTracker()}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = logger.NoOpLogger{}
	}
	if l.bus == nil {
		l.bus = eventbus.New(l.logger)
	}
	return l
}

var (
	defaultOnce   sync.Once
	defaultLoader *Loader
)

// Default returns the process-wide loader, creating it on first use. Options
// only take effect on that first call.
func Default(opts ...Option) *Loader {
	defaultOnce.Do(func() {
		defaultLoader = NewLoader(opts...)
	})
	return defaultLoader
}

func (l *Loader) DefaultPath() string {
	return l.defaultPath
}

// LoadDefault loads the loader's default menu file.
func (l *Loader) LoadDefault() (*Document, error) {
	return l.Load(l.defaultPath)
}

// Load reads, parses and validates the menu file at path. On success the
// document becomes current and menus-loaded subscribers are notified. On
// failure the current document is left untouched, load-error subscribers
// receive the message, and the *ConfigError is returned.
//
// Concurrent Load calls are not supported; callers serialize them.
func (l *Loader) Load(path string) (*Document, error) {
	start := time.Now()

	doc, err := readFile(path)
	elapsed := time.Since(start)
	l.stats.record(path, elapsed, err)
	if err != nil {
		l.fail(path, err)
		return nil, err
	}

	l.current.Store(doc)
	l.logger.Info(component, "menus loaded", map[string]interface{}{
		"path":     path,
		"version":  doc.Version,
		"roots":    len(doc.Menus),
		"nodes":    doc.Count(),
		"duration": elapsed.String(),
	})
	l.bus.Publish(eventbus.Event{Type: EventMenusLoaded, Data: doc})
	return doc, nil
}

func (l *Loader) fail(path string, err *ConfigError) {
	l.logger.Warning(component, "menu load failed", map[string]interface{}{
		"path":  path,
		"kind":  err.Kind.String(),
		"error": err.Message,
	})
	l.bus.Publish(eventbus.Event{Type: EventLoadError, Data: err.Message})
}

// Current returns the last successfully loaded document, or nil. The
// document is shared and must not be modified.
func (l *Loader) Current() *Document {
	return l.current.Load()
}

// Menus returns a copy of the current menu tree, or nil if nothing has been
// loaded yet.
func (l *Loader) Menus() []Node {
	doc := l.current.Load()
	if doc == nil {
		return nil
	}
	return CloneNodes(doc.Menus)
}

// OnMenusLoaded registers fn to receive a copy of the menus after every
// successful Load. The returned func removes the registration.
func (l *Loader) OnMenusLoaded(fn func(menus []Node)) func() {
	id := l.bus.Subscribe(EventMenusLoaded, func(e eventbus.Event) {
		if doc, ok := e.Data.(*Document); ok {
			fn(CloneNodes(doc.Menus))
		}
	})
	return func() { l.bus.Unsubscribe(EventMenusLoaded, id) }
}

// OnLoadError registers fn to receive the message of every failed Load.
func (l *Loader) OnLoadError(fn func(message string)) func() {
	id := l.bus.Subscribe(EventLoadError, func(e eventbus.Event) {
		if msg, ok := e.Data.(string); ok {
			fn(msg)
		}
	})
	return func() { l.bus.Unsubscribe(EventLoadError, id) }
}

// ReadFile loads and validates a menu file without touching any Loader
// state. Every error it returns is a *ConfigError carrying path.
func ReadFile(path string) (*Document, error) {
	doc, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func readFile(path string) (*Document, *ConfigError) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigError{
				Kind:    KindNotFound,
				Path:    path,
				Message: "config file not found: " + path,
				Err:     err,
			}
		}
		return nil, readError(path, err)
	}
	if info.IsDir() {
		return nil, readError(path, errors.New("is a directory"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, readError(path, err)
	}

	doc, cfgErr := parse(data, FormatFromPath(path))
	if cfgErr != nil {
		cfgErr.Path = path
		return nil, cfgErr
	}
	return doc, nil
}

// Parse decodes and validates menu configuration bytes.
func Parse(data []byte, format Format) (*Document, error) {
	doc, err := parse(data, format)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func parse(data []byte, format Format) (*Document, *ConfigError) {
	raw, err := decode(data, format)
	if err != nil {
		return nil, err
	}
	return validateDocument(raw)
}

func readError(path string, err error) *ConfigError {
	return &ConfigError{
		Kind:    KindRead,
		Path:    path,
		Message: fmt.Sprintf("read config file: %s: %v", path, err),
		Err:     err,
	}
}
