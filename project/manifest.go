package project

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/ardnew/cmakepm/pkg"
)

// ManifestName is the file name of a project manifest.
const ManifestName = "CMakeLists.txt"

// IsManifestPath reports whether the final element of path is [ManifestName].
func IsManifestPath(path string) bool {
	return filepath.Base(path) == ManifestName
}

// LoadManifest returns the text of the manifest at path.
func LoadManifest(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrManifestMissing.With(slog.String("path", path))
		}

		return "", ErrManifestRead.Wrap(err).With(slog.String("path", path))
	}

	if !info.Mode().IsRegular() {
		return "", ErrManifestNotFile.With(slog.String("path", path))
	}

	if !IsManifestPath(path) {
		return "", ErrManifestName.With(
			slog.String("path", path),
			slog.String("want", ManifestName),
		)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", ErrManifestRead.Wrap(err).With(slog.String("path", path))
	}

	if !utf8.Valid(data) {
		return "", ErrManifestText.With(slog.String("path", path))
	}

	return string(data), nil
}

// StoreManifest replaces the content of the manifest at path with text.
func StoreManifest(path, text string) error {
	err := os.WriteFile(path, []byte(text), pkg.FileMode)
	if err != nil {
		return ErrManifestWrite.Wrap(err).With(slog.String("path", path))
	}

	return nil
}

// IsProjectDir reports whether dir is a directory containing a manifest.
func IsProjectDir(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}

	_, err = os.Stat(filepath.Join(dir, ManifestName))

	return err == nil
}

// exists reports whether anything exists at path.
func exists(path string) bool {
	_, err := os.Lstat(path)

	return err == nil
}
