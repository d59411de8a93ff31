package project

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/cmakepm/manifest"
	"github.com/ardnew/cmakepm/pkg"
)

const (
	sourceExt = ".cpp"
	headerExt = ".h"
)

// AddClass adds a source and header pair for a class called name to the
// project in dir, and registers both with the project's add_executable
// statement. It returns the paths of the created files.
//
// The manifest is read and checked before any file is created, so a failed
// AddClass leaves the project untouched.
func AddClass(
	ctx context.Context,
	dir, name string,
	opts ...Option,
) ([]string, error) {
	o := makeOptions(opts...)

	if err := validName("class", name); err != nil {
		return nil, err
	}

	if !IsProjectDir(dir) {
		return nil, ErrNotProject.With(slog.String("path", dir))
	}

	source, header := name+sourceExt, name+headerExt
	files := []string{filepath.Join(dir, source), filepath.Join(dir, header)}

	for _, f := range files {
		if exists(f) {
			return nil, ErrClassExists.With(slog.String("path", f))
		}
	}

	path := filepath.Join(dir, ManifestName)

	text, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}

	doc, err := manifest.Parse(ctx, text, manifest.WithLogger(o.logger))
	if err != nil {
		return nil, ErrManifestParse.Wrap(err).With(slog.String("path", path))
	}

	if _, ok := doc.Find(manifest.KindAddExecutable); !ok {
		return nil, ErrNoExecutable.With(slog.String("path", path))
	}

	content := [][]byte{
		[]byte(`#include "` + header + `"` + "\n"),
		nil,
	}

	for i, f := range files {
		if err := createExclusive(f, content[i]); err != nil {
			remove(files[:i])

			if errors.Is(err, fs.ErrExist) {
				return nil, ErrClassExists.With(slog.String("path", f))
			}

			return nil, ErrCreate.Wrap(err).With(slog.String("path", f))
		}

		o.logger.DebugContext(ctx, "created class file",
			slog.String("path", f),
		)
	}

	doc.Append(manifest.KindAddExecutable, source, header)

	if err := StoreManifest(path, doc.String()); err != nil {
		remove(files)

		return nil, err
	}

	o.logger.InfoContext(ctx, "added class",
		slog.String("name", name),
		slog.String("manifest", path),
	)

	return files, nil
}

// createExclusive writes data to a new file at path. It fails with
// fs.ErrExist if path already exists.
func createExclusive(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, pkg.FileMode)
	if err != nil {
		return err
	}

	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		_ = os.Remove(path)
	}

	return err
}

func remove(paths []string) {
	for _, p := range paths {
		_ = os.Remove(p)
	}
}
