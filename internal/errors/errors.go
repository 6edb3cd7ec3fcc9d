// Package errors tags generator failures with the input that caused them.
// Every failure is fatal; the Kind only tells the caller which input was at
// fault. Messages are built with fmt.Errorf, so %w wrapping works as usual.
package errors

import (
	"errors"
	"fmt"
)

// Kind names the input a failure is attributed to.
type Kind int

const (
	KindUnknown Kind = iota
	KindManifestParse
	KindMissingField
	KindSnippetNotFound
	KindWrite
	KindValidation
	KindConfig
)

var kindNames = map[Kind]string{
	KindManifestParse:   "manifest_parse",
	KindMissingField:    "missing_field",
	KindSnippetNotFound: "snippet_not_found",
	KindWrite:           "write",
	KindValidation:      "validation",
	KindConfig:          "config",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// kindError attaches a Kind to an error without changing its message.
type kindError struct {
	kind Kind
	err  error
}

func (e *kindError) Error() string { return e.err.Error() }
func (e *kindError) Unwrap() error { return e.err }

// Errorf formats like fmt.Errorf and tags the result with kind.
func Errorf(kind Kind, format string, args ...any) error {
	return &kindError{kind: kind, err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the outermost tagged error in err's chain, or
// KindUnknown. Joined errors are searched in order.
func KindOf(err error) Kind {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind
	}
	return KindUnknown
}
