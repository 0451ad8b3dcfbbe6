package ds9

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorPolicy selects how recoverable problems are handled during a parse
type ErrorPolicy int

const (
	// Strict aborts the parse on the first problem
	Strict ErrorPolicy = iota
	// Warn skips the offending shape and records a warning
	Warn
	// Ignore skips the offending shape silently
	Ignore
)

func (p ErrorPolicy) String() string {
	switch p {
	case Warn:
		return "warn"
	case Ignore:
		return "ignore"
	}
	return "strict"
}

// ParseErrorPolicy converts "strict", "warn" or "ignore"
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return Strict, nil
	case "warn":
		return Warn, nil
	case "ignore":
		return Ignore, nil
	}
	return Strict, fmt.Errorf("ds9: unknown error policy %q (want strict, warn or ignore)", s)
}

// ErrorKind classifies a parse problem
type ErrorKind int

const (
	// SyntaxError is unparsable line structure; always fatal
	SyntaxError ErrorKind = iota
	// UnsupportedTypeError is an unknown or composite region type
	UnsupportedTypeError
	// ArityError is a wrong argument count or an unusable value
	ArityError
	// FrameError is a sky coordinate with no coordinate system; always fatal
	FrameError
)

var (
	ErrSyntax          = errors.New("ds9: syntax error")
	ErrUnsupportedType = errors.New("ds9: unsupported region type")
	ErrArity           = errors.New("ds9: invalid region arguments")
	ErrFrame           = errors.New("ds9: no coordinate system")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnsupportedTypeError:
		return ErrUnsupportedType
	case ArityError:
		return ErrArity
	case FrameError:
		return ErrFrame
	}
	return ErrSyntax
}

func (k ErrorKind) String() string {
	switch k {
	case UnsupportedTypeError:
		return "unsupported type"
	case ArityError:
		return "arity"
	case FrameError:
		return "frame"
	}
	return "syntax"
}

// ParseError describes a problem found on one line of a region file
type ParseError struct {
	Kind       ErrorKind
	Line       int    // 1-based line number
	Text       string // offending line content
	RegionType string // region keyword, when known
	Msg        string
	Err        error // underlying cause, if any
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("ds9: line %d: %s", e.Line, e.Msg)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg + fmt.Sprintf(" (in %q)", e.Text)
}

// Unwrap exposes both the kind sentinel and the underlying cause
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind.sentinel(), e.Err}
	}
	return []error{e.Kind.sentinel()}
}

// Fatal reports whether the error aborts a parse regardless of policy
func (e *ParseError) Fatal() bool {
	return e.Kind == SyntaxError || e.Kind == FrameError
}
