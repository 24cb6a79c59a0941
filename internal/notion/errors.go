package notion

import (
	"errors"
	"fmt"
)

// Kind classifies a parse failure.
type Kind int

const (
	// KindFormat means the document does not follow the fixed header layout.
	KindFormat Kind = iota + 1
	// KindValue means a header field did not parse against its grammar.
	KindValue
	// KindReference means an attachment line is malformed.
	KindReference
)

// Sentinels for errors.Is. A *ParseError matches the sentinel of its Kind.
var (
	ErrFormat    = errors.New("format error")
	ErrValue     = errors.New("value error")
	ErrReference = errors.New("reference error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindFormat:
		return ErrFormat
	case KindValue:
		return ErrValue
	case KindReference:
		return ErrReference
	}
	return nil
}

// String returns the kind's name.
func (k Kind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseError reports where and why a note failed to parse.
type ParseError struct {
	Kind  Kind
	Line  int    // 1-based; 0 when the failure is not tied to a line
	Field string // header field or "attachment"
	Err   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Field != "" {
		msg += " in " + e.Field
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *ParseError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// atLine returns err with Line set, if err is a *ParseError.
func atLine(err error, line int) error {
	var parseErr *ParseError
	if errors.As(err, &parseErr) && parseErr.Line == 0 {
		parseErr.Line = line
	}
	return err
}
