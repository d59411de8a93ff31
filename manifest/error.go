package manifest

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrUnknownFunction = NewError("unknown function")
	ErrUnmatchedClose  = NewError("unmatched ')'")
	ErrUnexpectedSpace = NewError("whitespace between function name and '('")
	ErrUnexpectedEOF   = NewError("unexpected end of input")
	ErrInvalidUTF8     = NewError("invalid UTF-8 byte")
	ErrReadInput       = NewError("failed to read input")
	ErrFilterCompile   = NewError("filter compilation failed")
	ErrFilterEvaluate  = NewError("filter evaluation failed")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an [Error] with the same message, so values
// derived from a sentinel with Wrap or With still match it.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg != "" && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
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
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
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

// Position identifies a character in manifest text.
type Position struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based, in runes
}

// String returns "line:column".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// ParseError reports where and why a parse stopped early. The statements
// completed before Pos are still returned alongside it.
type ParseError struct {
	Reason      *Error   // one of the Err* sentinels
	Pos         Position // offending character (or name start)
	Token       string   // offending token text, if any
	Suggestions []string // known function names close to Token
	Source      string   // the text being parsed
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Reason.Error())

	if e.Token != "" {
		sb.WriteString(" ")
		sb.WriteString(strconv.Quote(e.Token))
	}

	sb.WriteString(" at line ")
	sb.WriteString(strconv.Itoa(e.Pos.Line))
	sb.WriteString(", column ")
	sb.WriteString(strconv.Itoa(e.Pos.Column))

	if len(e.Suggestions) > 0 {
		quoted := make([]string, len(e.Suggestions))
		for i, s := range e.Suggestions {
			quoted[i] = strconv.Quote(s)
		}

		sb.WriteString(" (did you mean ")
		sb.WriteString(strings.Join(quoted, " or "))
		sb.WriteString("?)")
	}

	return sb.String()
}

// Unwrap returns the sentinel reason so errors.Is works on ParseError.
func (e *ParseError) Unwrap() error { return e.Reason }

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("error", e.Reason.Error()),
		slog.Int("offset", e.Pos.Offset),
		slog.Int("line", e.Pos.Line),
		slog.Int("column", e.Pos.Column),
	}

	if e.Token != "" {
		attrs = append(attrs, slog.String("token", e.Token))
	}

	if len(e.Suggestions) > 0 {
		attrs = append(attrs, slog.Any("suggestions", e.Suggestions))
	}

	return slog.GroupValue(attrs...)
}

// Snippet returns the offending source line followed by a caret under the
// error column, or "" if the source is not available.
func (e *ParseError) Snippet() string {
	lines := strings.Split(e.Source, "\n")
	if e.Source == "" || e.Pos.Line < 1 || e.Pos.Line > len(lines) {
		return ""
	}

	line := strings.TrimRight(lines[e.Pos.Line-1], "\r")
	num := strconv.Itoa(e.Pos.Line)

	var src strings.Builder

	src.WriteString("  ")
	src.WriteString(num)
	src.WriteString(" | ")
	src.WriteString(line)
	src.WriteByte('\n')

	// +5 accounts for 2 leading spaces and " | ".
	src.WriteString(strings.Repeat(" ", len(num)+5+max(e.Pos.Column-1, 0)))
	src.WriteString("^")

	return src.String()
}
