package manifest

import "testing"

func TestStatement_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stmt *Statement
		want string
	}{
		{NewStatement(KindProject), "project()"},
		{NewStatement(KindProject, "p"), "project(p)"},
		{NewStatement(KindCMakeMinimumRequired, "VERSION", "3.30"), "cmake_minimum_required(VERSION 3.30)"},
	}

	for _, tt := range tests {
		if got := tt.stmt.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStatement_CloneIsDeep(t *testing.T) {
	t.Parallel()

	s := NewStatement(KindAddExecutable, "app", "main.cpp")
	c := s.Clone()
	c.Args[0] = "other"

	if s.Args[0] != "app" {
		t.Errorf("mutating clone changed original: %q", s)
	}

	if s.Equal(c) {
		t.Error("Equal reported modified clone as equal")
	}
}

func TestNewStatement_CopiesArgs(t *testing.T) {
	t.Parallel()

	args := []string{"a", "b"}
	s := NewStatement(KindProject, args...)
	args[0] = "z"

	if s.Args[0] != "a" {
		t.Errorf("NewStatement aliased its arguments: %q", s)
	}
}

func TestDocument_Append(t *testing.T) {
	t.Parallel()

	doc := New(
		NewStatement(KindProject, "p"),
		NewStatement(KindAddExecutable, "first", "a.cpp"),
		NewStatement(KindAddExecutable, "second", "b.cpp"),
	)

	if !doc.Append(KindAddExecutable, "c.cpp") {
		t.Fatal("Append reported no match")
	}

	want := "project(p)\nadd_executable(first a.cpp c.cpp)\nadd_executable(second b.cpp)"
	if got := doc.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if doc.Append(KindCMakeMinimumRequired, "VERSION") {
		t.Error("Append reported match for missing kind")
	}

	if got := doc.String(); got != want {
		t.Errorf("failed Append changed document: %q", got)
	}
}

func TestDocument_DefineAndFind(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.Define(KindCMakeMinimumRequired, "VERSION", "3.30")
	doc.Define(KindProject, "p")

	if doc.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", doc.Len())
	}

	s, ok := doc.Find(KindProject)
	if !ok || s.Args[0] != "p" {
		t.Errorf("Find(project) = %v, %v", s, ok)
	}

	if _, ok := doc.Find(KindAddExecutable); ok {
		t.Error("Find(add_executable) succeeded on document without one")
	}
}

func TestDocument_All_StopsEarly(t *testing.T) {
	t.Parallel()

	doc := New(NewStatement(KindProject, "a"), NewStatement(KindProject, "b"))

	var seen int
	for range doc.All() {
		seen++

		break
	}

	if seen != 1 {
		t.Errorf("iterated %d statements after break, want 1", seen)
	}
}

func TestDocument_Nil(t *testing.T) {
	t.Parallel()

	var doc *Document

	if doc.Len() != 0 {
		t.Errorf("nil Len() = %d", doc.Len())
	}

	if doc.Clone() != nil {
		t.Error("nil Clone() not nil")
	}

	if !doc.Equal(New()) {
		t.Error("nil document not equal to empty document")
	}
}
