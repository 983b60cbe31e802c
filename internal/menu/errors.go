package menu

import "errors"

// Kind classifies a ConfigError.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindRead
	KindParseError
	KindValidationError
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindRead:
		return "Read"
	case KindParseError:
		return "ParseError"
	case KindValidationError:
		return "ValidationError"
	default:
		return "Unknown"
	}
}

// Sentinels for errors.Is matching on the kind of a ConfigError.
var (
	ErrNotFound   = errors.New("menu config not found")
	ErrRead       = errors.New("menu config unreadable")
	ErrParse      = errors.New("menu config parse error")
	ErrValidation = errors.New("menu config invalid")
)

// ConfigError is the single error type returned by loading, parsing and
// validation. Message is the human-readable text also broadcast to
// load-error subscribers.
type ConfigError struct {
	Kind    Kind
	Path    string
	Message string

	// Line and Column locate JSON syntax errors; zero when unknown.
	Line   int
	Column int

	Err error
}

func (e *ConfigError) Error() string {
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrRead:
		return e.Kind == KindRead
	case ErrParse:
		return e.Kind == KindParseError
	case ErrValidation:
		return e.Kind == KindValidationError
	}
	return false
}

// KindOf returns the kind of err if it is, or wraps, a ConfigError, and zero otherwise.
func KindOf(err error) Kind {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind
	}
	return 0
}
