package manifest

import (
	"iter"
	"strconv"
)

// Kind identifies the function a statement calls. The zero value is not a
// valid kind and never appears in a parsed [Document].
type Kind int

const (
	KindCMakeMinimumRequired Kind = iota + 1 // cmake_minimum_required
	KindProject                              // project
	KindAddExecutable                        // add_executable
)

//nolint:gochecknoglobals
var kindName = [...]string{
	KindCMakeMinimumRequired: "cmake_minimum_required",
	KindProject:              "project",
	KindAddExecutable:        "add_executable",
}

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	return k >= KindCMakeMinimumRequired && k <= KindAddExecutable
}

// String returns the canonical function name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindName[k]
}

// ParseKind resolves a function name. Matching is exact and case-sensitive.
func ParseKind(name string) (Kind, bool) {
	for k := range Kinds() {
		if kindName[k] == name {
			return k, true
		}
	}

	return 0, false
}

// Kinds returns an iterator over all recognized kinds in declaration order.
func Kinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := KindCMakeMinimumRequired; k <= KindAddExecutable; k++ {
			if !yield(k) {
				return
			}
		}
	}
}

// KindNames returns the canonical names of all recognized kinds.
func KindNames() []string {
	names := make([]string, 0, len(kindName)-1)
	for k := range Kinds() {
		names = append(names, k.String())
	}

	return names
}
