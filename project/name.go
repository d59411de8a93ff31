package project

import (
	"log/slog"
	"strings"
	"unicode"
)

// validName rejects names that cannot be used both as a file name and as a
// single manifest argument token.
func validName(kind, name string) error {
	bad := name == "" || name == "." || name == ".." ||
		strings.ContainsFunc(name, func(r rune) bool {
			return unicode.IsSpace(r) || unicode.IsControl(r) ||
				strings.ContainsRune(`()/\`, r)
		})
	if bad {
		return ErrInvalidName.With(
			slog.String("kind", kind),
			slog.String("name", name),
		)
	}

	return nil
}
