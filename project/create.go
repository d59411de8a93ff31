package project

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/cmakepm/manifest"
	"github.com/ardnew/cmakepm/pkg"
)

const (
	// MainSource is the file name of the entry point of a new project.
	MainSource = "main.cpp"
	// BuildDir is the name of the out-of-source build directory of a new
	// project.
	BuildDir = "build"
)

const mainSourceText = "#include <iostream>\nint main () {\n" +
	"\tstd::cout << \"HelloWorld!\" << std::endl;\n\treturn 0;\n}"

// NewManifest returns the manifest of a new project named name.
func NewManifest(name, cmakeVersion string) *manifest.Document {
	doc := manifest.New()
	doc.Define(manifest.KindCMakeMinimumRequired, "VERSION", cmakeVersion)
	doc.Define(manifest.KindProject, name)
	doc.Define(manifest.KindAddExecutable, name, MainSource)

	return doc
}

// Create scaffolds a new project named name in a new directory under parent
// and returns the path of that directory.
//
// The project contains a hello-world [MainSource], a [ManifestName] building
// it into an executable called name, and an empty [BuildDir]. If any of
// these cannot be created, the new directory is removed again.
func Create(
	ctx context.Context,
	parent, name string,
	opts ...Option,
) (string, error) {
	o := makeOptions(opts...)

	if err := validName("project", name); err != nil {
		return "", err
	}

	dir := filepath.Join(parent, name)
	if exists(dir) {
		return "", ErrProjectExists.With(slog.String("path", dir))
	}

	if err := o.mkdir(dir, pkg.DirMode); err != nil {
		return "", ErrCreate.Wrap(err).With(slog.String("path", dir))
	}

	o.logger.DebugContext(ctx, "created project directory",
		slog.String("path", dir),
	)

	src := filepath.Join(dir, MainSource)
	if err := os.WriteFile(src, []byte(mainSourceText), pkg.FileMode); err != nil {
		_ = os.RemoveAll(dir)

		return "", ErrCreate.Wrap(err).With(slog.String("path", src))
	}

	o.logger.DebugContext(ctx, "created main source",
		slog.String("path", src),
	)

	path := filepath.Join(dir, ManifestName)
	if err := StoreManifest(path, NewManifest(name, o.cmakeVersion).String()); err != nil {
		_ = os.RemoveAll(dir)

		return "", err
	}

	o.logger.DebugContext(ctx, "created manifest",
		slog.String("path", path),
		slog.String("cmake_version", o.cmakeVersion),
	)

	build := filepath.Join(dir, BuildDir)
	if err := o.mkdir(build, pkg.DirMode); err != nil {
		_ = os.RemoveAll(dir)

		return "", ErrCreate.Wrap(err).With(slog.String("path", build))
	}

	o.logger.InfoContext(ctx, "created project",
		slog.String("name", name),
		slog.String("path", dir),
	)

	return dir, nil
}
