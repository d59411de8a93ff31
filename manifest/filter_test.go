package manifest

import (
	"errors"
	"testing"
)

func TestDocument_Select(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sample+"\nadd_executable(tool tool.cpp)")

	tests := []struct {
		name   string
		filter string
		want   string
	}{
		{name: "empty matches all", filter: "", want: doc.String()},
		{
			name:   "by kind",
			filter: `kind == "add_executable"`,
			want:   "add_executable(app main.cpp)\nadd_executable(tool tool.cpp)",
		},
		{
			name:   "by argument",
			filter: `"tool.cpp" in args`,
			want:   "add_executable(tool tool.cpp)",
		},
		{
			name:   "by index",
			filter: `index < 2`,
			want:   "cmake_minimum_required(VERSION 3.30)\nproject(app)",
		},
		{
			name:   "by argument count",
			filter: `len(args) == 1`,
			want:   "project(app)",
		},
		{name: "no match", filter: `kind == "none"`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := CompileFilter(tt.filter)
			if err != nil {
				t.Fatalf("CompileFilter(%q) failed: %v", tt.filter, err)
			}

			got, err := doc.Select(f)
			if err != nil {
				t.Fatalf("Select failed: %v", err)
			}

			if got.String() != tt.want {
				t.Errorf("Select(%q) = %q, want %q", tt.filter, got, tt.want)
			}
		})
	}
}

func TestDocument_Select_ReturnsCopies(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sample)

	f, err := CompileFilter(`kind == "project"`)
	if err != nil {
		t.Fatal(err)
	}

	sel, err := doc.Select(f)
	if err != nil {
		t.Fatal(err)
	}

	sel.Append(KindProject, "extra")

	if doc.String() != sample {
		t.Errorf("mutating selection changed source: %q", doc)
	}
}

func TestCompileFilter_Errors(t *testing.T) {
	t.Parallel()

	for _, src := range []string{`kind ==`, `1 + 2`, `unknown_var`} {
		if _, err := CompileFilter(src); !errors.Is(err, ErrFilterCompile) {
			t.Errorf("CompileFilter(%q) error = %v, want %v", src, err, ErrFilterCompile)
		}
	}
}

func TestFilter_String(t *testing.T) {
	t.Parallel()

	f, err := CompileFilter(`index == 0`)
	if err != nil {
		t.Fatal(err)
	}

	if f.String() != `index == 0` {
		t.Errorf("String() = %q", f.String())
	}
}
