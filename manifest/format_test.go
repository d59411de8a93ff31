package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

const sample = "cmake_minimum_required(VERSION 3.30)\nproject(app)\nadd_executable(app main.cpp)"

func TestSerialize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stmts []*Statement
		want  string
	}{
		{name: "empty", stmts: nil, want: ""},
		{name: "single", stmts: []*Statement{NewStatement(KindProject, "p")}, want: "project(p)"},
		{name: "zero arguments", stmts: []*Statement{NewStatement(KindProject)}, want: "project()"},
		{
			name: "no trailing newline",
			stmts: []*Statement{
				NewStatement(KindProject, "p"),
				NewStatement(KindAddExecutable, "p", "m.cpp"),
			},
			want: "project(p)\nadd_executable(p m.cpp)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Serialize(tt.stmts); got != tt.want {
				t.Errorf("Serialize() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestSerialize_RoundTrip verifies that canonical text survives a
// parse and serialize cycle unchanged.
func TestSerialize_RoundTrip(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sample)
	if got := doc.String(); got != sample {
		t.Errorf("String() = %q, want %q", got, sample)
	}

	again := mustParse(t, doc.String())
	if !again.Equal(doc) {
		t.Errorf("reparse = %q, want %q", again, doc)
	}
}

func TestDocument_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := mustParse(t, sample).Format(context.Background(), &buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if buf.String() != sample {
		t.Errorf("Format() = %q, want %q", buf.String(), sample)
	}
}

func TestDocument_FormatJSON(t *testing.T) {
	t.Parallel()

	doc := New(NewStatement(KindProject), NewStatement(KindAddExecutable, "app", "main.cpp"))

	var buf bytes.Buffer
	if err := doc.FormatJSON(context.Background(), &buf, 0); err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}

	want := `[{"function":"project","arguments":[]},` +
		`{"function":"add_executable","arguments":["app","main.cpp"]}]` + "\n"
	if buf.String() != want {
		t.Errorf("FormatJSON() = %q, want %q", buf.String(), want)
	}

	buf.Reset()

	if err := doc.FormatJSON(context.Background(), &buf, 4); err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}

	if !strings.Contains(buf.String(), "\n    {") {
		t.Errorf("FormatJSON(indent=4) not indented:\n%s", buf.String())
	}

	var got []record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decoding output: %v", err)
	}

	if len(got) != 2 || got[1].Function != "add_executable" ||
		!slices.Equal(got[1].Arguments, []string{"app", "main.cpp"}) {
		t.Errorf("decoded %+v", got)
	}
}

func TestDocument_FormatYAML(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sample)

	for _, indent := range []int{0, 2, 4} {
		var buf bytes.Buffer
		if err := doc.FormatYAML(context.Background(), &buf, indent); err != nil {
			t.Fatalf("FormatYAML(%d) failed: %v", indent, err)
		}

		var got []record
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("decoding indent=%d output: %v\n%s", indent, err, buf.String())
		}

		if !slices.EqualFunc(got, doc.records(), func(a, b record) bool {
			return a.Function == b.Function && slices.Equal(a.Arguments, b.Arguments)
		}) {
			t.Errorf("indent=%d decoded %+v, want %+v", indent, got, doc.records())
		}
	}
}

func TestDocument_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(New(NewStatement(KindProject, "p")))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `[{"function":"project","arguments":["p"]}]`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
