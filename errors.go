package mailwalk

import (
	"errors"
	"fmt"
)

// ErrorKind is a coarse-grained categorization for load and save failures.
type ErrorKind string

const (
	KindInputNotFound ErrorKind = "input_not_found"
	KindInvalidFormat ErrorKind = "invalid_format"
	KindAccessDenied  ErrorKind = "access_denied"
	KindOutputWrite   ErrorKind = "output_write"
)

// Sentinel errors, one per kind. An *OpError matches the sentinel of its kind
// with errors.Is.
var (
	ErrInputNotFound = errors.New("input not found")
	ErrInvalidFormat = errors.New("invalid format")
	ErrAccessDenied  = errors.New("access denied")
	ErrOutputWrite   = errors.New("output write failure")
)

var kindSentinels = map[ErrorKind]error{
	KindInputNotFound: ErrInputNotFound,
	KindInvalidFormat: ErrInvalidFormat,
	KindAccessDenied:  ErrAccessDenied,
	KindOutputWrite:   ErrOutputWrite,
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // optional: file the operation was acting on
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is the sentinel error for e's kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

// IsKind reports whether err is, or wraps, an *OpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
