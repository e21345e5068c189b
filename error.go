package bdrain

import (
	"errors"
	"fmt"
)

// Kind partitions drain failures into a closed set of categories. It can be used to
// pass errors around across layers and handle them structurally without string matching.
type Kind int

const (
	// KindUnknown is reported for errors that did not originate in this package.
	KindUnknown Kind = iota
	// KindIO marks a failure of the underlying reader to produce bytes.
	KindIO
	// KindEncoding marks bytes that are not valid UTF-8 text.
	KindEncoding
	// KindTransport marks a failure of the underlying chunk source to produce a chunk.
	KindTransport
)

// String returns the human readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io error"
	case KindEncoding:
		return "encoding error"
	case KindTransport:
		return "transport error"
	default:
		return "unknown error"
	}
}

// Error describes a drain failure together with its kind.
type Error struct {
	kind Kind
	err  error
}

// NewError inits a new error given the kind and the underlying cause.
func NewError(k Kind, underlying error) *Error {
	return &Error{k, underlying}
}

func (e *Error) Kind() Kind { return e.kind }
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.err.Error())
}

// Unwrap preserves the underlying cause for diagnostics.
func (e *Error) Unwrap() error { return e.err }

// KindOf returns the error's kind if it is or wraps an [*Error] and
// [KindUnknown] otherwise.
func KindOf(err error) Kind {
	if drainErr, ok := asError(err); ok {
		return drainErr.Kind()
	}
	return KindUnknown
}

// asError uses errors.As to unwrap any error and look for a bdrain *Error.
func asError(err error) (*Error, bool) {
	var drainErr *Error
	ok := errors.As(err, &drainErr)
	return drainErr, ok
}
