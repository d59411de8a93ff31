package manifest

import (
	"iter"
	"slices"
)

// Statement is one function call in a manifest, e.g.
// add_executable(app main.cpp).
type Statement struct {
	Kind Kind
	Args []string // literal argument tokens, in source order
}

// NewStatement returns a statement of the given kind and arguments.
func NewStatement(kind Kind, args ...string) *Statement {
	return &Statement{Kind: kind, Args: slices.Clone(args)}
}

// Clone returns a deep copy of s.
func (s *Statement) Clone() *Statement {
	return &Statement{Kind: s.Kind, Args: slices.Clone(s.Args)}
}

// Equal reports whether s and o have the same kind and argument tokens.
func (s *Statement) Equal(o *Statement) bool {
	if s == nil || o == nil {
		return s == o
	}

	return s.Kind == o.Kind && slices.Equal(s.Args, o.Args)
}

// pending is the statement under construction while the scanner is inside an
// argument list. It becomes a Statement only once its ')' is seen.
type pending struct {
	kind Kind
	args []string
}

func (p *pending) push(arg string) { p.args = append(p.args, arg) }

func (p *pending) finish() *Statement {
	return &Statement{Kind: p.kind, Args: p.args}
}

// Document is the ordered list of statements of one manifest. A Document is
// owned by a single parse, mutate, serialize cycle and is not safe for
// concurrent use.
type Document struct {
	Statements []*Statement
}

// New returns a document holding the given statements.
func New(stmts ...*Statement) *Document {
	return &Document{Statements: stmts}
}

// Len returns the number of statements in d.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}

	return len(d.Statements)
}

// Define appends a new statement to the end of d and returns it.
func (d *Document) Define(kind Kind, args ...string) *Statement {
	s := NewStatement(kind, args...)
	d.Statements = append(d.Statements, s)

	return s
}

// All returns an iterator over the statements of d with their indices.
func (d *Document) All() iter.Seq2[int, *Statement] {
	return func(yield func(int, *Statement) bool) {
		if d == nil {
			return
		}

		for i, s := range d.Statements {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Find returns the first statement of the given kind.
// Returns (nil, false) if d has no such statement.
func (d *Document) Find(kind Kind) (*Statement, bool) {
	for _, s := range d.All() {
		if s.Kind == kind {
			return s, true
		}
	}

	return nil, false
}

// Append adds args to the end of the argument list of the first statement of
// the given kind. Existing arguments keep their order. It reports false, and
// leaves d unchanged, when d has no statement of that kind.
func (d *Document) Append(kind Kind, args ...string) bool {
	s, ok := d.Find(kind)
	if !ok {
		return false
	}

	s.Args = append(s.Args, args...)

	return true
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}

	c := &Document{Statements: make([]*Statement, len(d.Statements))}
	for i, s := range d.Statements {
		c.Statements[i] = s.Clone()
	}

	return c
}

// Equal reports whether d and o hold equal statements in the same order.
func (d *Document) Equal(o *Document) bool {
	return slices.EqualFunc(
		d.statements(), o.statements(),
		func(a, b *Statement) bool { return a.Equal(b) },
	)
}

func (d *Document) statements() []*Statement {
	if d == nil {
		return nil
	}

	return d.Statements
}
