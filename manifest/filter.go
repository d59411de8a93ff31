package manifest

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean expression over a statement.
//
// The expression sees three variables:
//
//	kind  string   the function name, e.g. "add_executable"
//	args  []string the argument tokens
//	index int      the statement's position in its document
//
// For example: kind == "add_executable" && "main.cpp" in args.
type Filter struct {
	source  string
	program *vm.Program
}

// filterEnv is the expression environment of a Filter.
type filterEnv struct {
	Kind  string   `expr:"kind"`
	Args  []string `expr:"args"`
	Index int      `expr:"index"`
}

// CompileFilter compiles src into a Filter. An empty src matches everything.
func CompileFilter(src string) (*Filter, error) {
	if src == "" {
		src = "true"
	}

	program, err := expr.Compile(src, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, ErrFilterCompile.Wrap(err).
			With(slog.String("filter", src))
	}

	return &Filter{source: src, program: program}, nil
}

// String returns the filter's source expression.
func (f *Filter) String() string { return f.source }

// Match reports whether the statement at index satisfies f.
func (f *Filter) Match(index int, s *Statement) (bool, error) {
	out, err := expr.Run(f.program, filterEnv{
		Kind:  s.Kind.String(),
		Args:  s.Args,
		Index: index,
	})
	if err != nil {
		return false, ErrFilterEvaluate.Wrap(err).
			With(slog.String("filter", f.source), slog.Int("index", index))
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Select returns a new document holding copies of the statements of d that
// match f, in their original order.
func (d *Document) Select(f *Filter) (*Document, error) {
	out := New()

	for i, s := range d.All() {
		ok, err := f.Match(i, s)
		if err != nil {
			return out, err
		}

		if ok {
			out.Statements = append(out.Statements, s.Clone())
		}
	}

	return out, nil
}
