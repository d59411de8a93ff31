package project

import (
	"errors"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrManifestMissing = NewError("manifest does not exist")
	ErrManifestNotFile = NewError("manifest is not a regular file")
	ErrManifestName    = NewError("manifest has wrong file name")
	ErrManifestRead    = NewError("read manifest")
	ErrManifestText    = NewError("manifest is not valid UTF-8 text")
	ErrManifestWrite   = NewError("write manifest")
	ErrManifestParse   = NewError("manifest could not be fully parsed")
	ErrNoExecutable    = NewError("manifest has no add_executable statement")
	ErrInvalidName     = NewError("invalid name")
	ErrProjectExists   = NewError("project directory exists")
	ErrNotProject      = NewError("not a project directory")
	ErrClassExists     = NewError("class source or header exists")
	ErrCreate          = NewError("create project file")
)

// Error represents a project operation error with structured logging support.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an [Error] with the same message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.msg != "" && t.msg == e.msg
}

func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.Any("cause", e.err))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
	}
}

// With adds attributes to the error for structured logging.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}
