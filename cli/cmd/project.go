package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/cmakepm/log"
	"github.com/ardnew/cmakepm/project"
)

// New creates a new project skeleton.
type New struct {
	CMakeVersion string `default:"${cmakeVersion}" help:"Minimum CMake version written to the manifest." name:"cmake-version"`
	Dir          string `default:"."               help:"Parent directory of the new project."          short:"C"           type:"path"`

	Name string `arg:"" help:"Project and executable name." name:"name"`
}

// Run executes the new command.
func (n *New) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	dir, err := project.Create(ctx, n.Dir, n.Name,
		project.WithCMakeVersion(n.CMakeVersion),
		project.WithLogger(log.Default()),
	)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(streamsFrom(ctx).Out, dir)

	return err
}

// Reload is reserved for regenerating build files. It currently does nothing.
type Reload struct{}

// Run executes the reload command.
func (*Reload) Run(ctx context.Context) error {
	log.InfoContext(ctx, "reload is not implemented yet")

	return nil
}

// AddClass adds a source and header pair to an existing project.
type AddClass struct {
	Dir string `default:"." help:"Project directory." short:"C" type:"existingdir"`

	Name string `arg:"" help:"Class name; creates NAME.cpp and NAME.h." name:"name"`
}

// Run executes the add-class command.
func (a *AddClass) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	files, err := project.AddClass(ctx, a.Dir, a.Name,
		project.WithLogger(log.Default()),
	)
	if err != nil {
		diagnose(ctx, err)

		return err
	}

	out := streamsFrom(ctx).Out
	for _, f := range files {
		if _, err := fmt.Fprintln(out, f); err != nil {
			return err
		}
	}

	log.DebugContext(ctx, "add-class complete", slog.Int("files", len(files)))

	return nil
}
