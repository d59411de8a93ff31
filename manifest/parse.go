package manifest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// ParseReader parses a manifest from an io.Reader.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return New(), ErrReadInput.Wrap(err)
	}

	return Parse(ctx, string(data), opts...)
}

// Parse reads manifest text into a Document.
//
// Parsing stops at the first malformed input. The returned Document always
// holds every statement completed before that point, and the error is a
// *ParseError describing where and why parsing stopped. A nil error means the
// whole text was consumed.
func Parse(ctx context.Context, s string, opts ...Option) (*Document, error) {
	o := makeOptions(opts...)

	sc := &scanner{
		doc: New(),
		pos: Position{Line: 1, Column: 1},
	}

	err := sc.scan(s)
	if err != nil {
		err.Source = s

		o.logger.DebugContext(ctx, "parse aborted",
			slog.Any("error", err),
			slog.Int("statements", sc.doc.Len()),
		)

		return sc.doc, err
	}

	o.logger.TraceContext(ctx, "parse complete",
		slog.Int("source_bytes", len(s)),
		slog.Int("statements", sc.doc.Len()),
	)

	return sc.doc, nil
}

// scanState is the scanner's position in the grammar.
type scanState int

const (
	// scanName accumulates a function name up to its '('.
	scanName scanState = iota
	// scanArgs accumulates argument tokens up to the closing ')'.
	scanArgs
)

// scanner is a single-pass, one-character state machine. Each state owns its
// buffer: name in scanName, arg (plus the pending statement) in scanArgs.
type scanner struct {
	state  scanState
	name   strings.Builder
	nameAt Position
	arg    strings.Builder
	stmt   pending
	pos    Position
	doc    *Document
}

func (sc *scanner) scan(s string) *ParseError {
	for i, r := range s {
		var err *ParseError

		sc.pos.Offset = i

		if r == utf8.RuneError {
			if _, w := utf8.DecodeRuneInString(s[i:]); w == 1 {
				return sc.fail(ErrInvalidUTF8, sc.pos, fmt.Sprintf("%#02x", s[i]))
			}
		}

		switch sc.state {
		case scanName:
			err = sc.stepName(r)
		case scanArgs:
			sc.stepArgs(r)
		}

		if err != nil {
			return err
		}

		sc.advance(r)
	}

	sc.pos.Offset = len(s)

	switch {
	case sc.state == scanArgs:
		return sc.fail(ErrUnexpectedEOF, sc.pos, sc.stmt.kind.String())

	case sc.name.Len() > 0:
		return sc.fail(ErrUnexpectedEOF, sc.pos, sc.name.String())
	}

	return nil
}

func (sc *scanner) advance(r rune) {
	if r == '\n' {
		sc.pos.Line++
		sc.pos.Column = 1
	} else {
		sc.pos.Column++
	}
}

func (sc *scanner) stepName(r rune) *ParseError {
	switch r {
	case '\n', '\t', '\r':
		// Skipped without separating: "pro\nject(" names project.

	case ' ':
		if sc.name.Len() > 0 {
			return sc.fail(ErrUnexpectedSpace, sc.pos, sc.name.String())
		}

	case '(':
		name := sc.name.String()

		kind, ok := ParseKind(name)
		if !ok {
			at := sc.nameAt
			if name == "" {
				at = sc.pos
			}

			return sc.fail(ErrUnknownFunction, at, name)
		}

		sc.name.Reset()
		sc.stmt = pending{kind: kind}
		sc.state = scanArgs

	case ')':
		return sc.fail(ErrUnmatchedClose, sc.pos, "")

	default:
		if sc.name.Len() == 0 {
			sc.nameAt = sc.pos
		}

		sc.name.WriteRune(r)
	}

	return nil
}

func (sc *scanner) stepArgs(r rune) {
	switch r {
	case '\n', '\t', '\r':
		// Skipped; never terminates a token.

	case ' ':
		sc.flush()

	case ')':
		sc.flush()
		sc.doc.Statements = append(sc.doc.Statements, sc.stmt.finish())
		sc.stmt = pending{}
		sc.state = scanName

	default:
		// Includes '(': nested calls are not part of the grammar.
		sc.arg.WriteRune(r)
	}
}

// flush moves a non-empty argument buffer onto the pending statement.
func (sc *scanner) flush() {
	if sc.arg.Len() == 0 {
		return
	}

	sc.stmt.push(sc.arg.String())
	sc.arg.Reset()
}

func (sc *scanner) fail(reason *Error, at Position, token string) *ParseError {
	pe := &ParseError{Reason: reason, Pos: at, Token: token}

	if reason == ErrUnknownFunction {
		pe.Suggestions = suggest(token)
	}

	return pe
}

// suggest returns the known function names that fuzzy-match name, best first.
func suggest(name string) []string {
	if name == "" {
		return nil
	}

	matches := fuzzy.Find(name, KindNames())
	if len(matches) == 0 {
		return nil
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}

	return out
}
