package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/ardnew/cmakepm/log"
	"github.com/ardnew/cmakepm/manifest"
	"github.com/ardnew/cmakepm/project"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// Fmt parses a manifest and prints it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as native manifest syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
}

// Input is the manifest source shared by all fmt subcommands.
type Input struct {
	Where string `help:"Only print statements matching this expression over kind, args and index." short:"w"`

	Source string `arg:"" default:"${manifestName}" help:"Manifest file or '-' for stdin." name:"source"`
}

// load reads, parses and filters the manifest named by s.Source.
func (s *Input) load(ctx context.Context) (*manifest.Document, error) {
	var text string

	if s.Source == stdinSource {
		data, err := io.ReadAll(streamsFrom(ctx).In)
		if err != nil {
			return nil, ErrReadSource.Wrap(err).With(slog.String("source", s.Source))
		}

		if !utf8.Valid(data) {
			return nil, ErrReadSource.Wrap(project.ErrManifestText).
				With(slog.String("source", s.Source))
		}

		text = string(data)
	} else {
		var err error

		text, err = project.LoadManifest(s.Source)
		if err != nil {
			return nil, ErrReadSource.Wrap(err).With(slog.String("source", s.Source))
		}
	}

	doc, err := manifest.ParseCached(ctx, text, manifest.WithLogger(log.Default()))
	if err != nil {
		diagnose(ctx, err)

		return nil, ErrParseSource.Wrap(err).With(slog.String("source", s.Source))
	}

	if s.Where == "" {
		return doc, nil
	}

	filter, err := manifest.CompileFilter(s.Where)
	if err != nil {
		return nil, ErrFilter.Wrap(err)
	}

	doc, err = doc.Select(filter)
	if err != nil {
		return nil, ErrFilter.Wrap(err)
	}

	log.DebugContext(ctx, "filtered manifest",
		slog.String("where", s.Where),
		slog.Int("statements", doc.Len()),
	)

	return doc, nil
}

// Native formats input as canonical manifest syntax.
type Native struct {
	Input `embed:""`

	Write bool `help:"Rewrite the source file in canonical form instead of printing it." short:"W"`
}

// Run executes the native command.
func (n *Native) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if n.Write {
		switch {
		case n.Source == stdinSource:
			return ErrWriteStdin
		case n.Where != "":
			return ErrWriteFiltered
		}
	}

	doc, err := n.load(ctx)
	if err != nil {
		return err
	}

	if n.Write {
		err = project.StoreManifest(n.Source, doc.String())
		if err != nil {
			return err
		}

		log.InfoContext(ctx, "formatted manifest", slog.String("path", n.Source))

		return nil
	}

	out := streamsFrom(ctx).Out

	err = doc.Format(ctx, out)
	if err == nil && doc.Len() > 0 {
		_, err = fmt.Fprintln(out)
	}

	if err != nil {
		return ErrWriteFormat.Wrap(err).With(slog.String("format", "native"))
	}

	return nil
}

// JSON formats input as a JSON array of statements.
type JSON struct {
	Input `embed:""`

	Indent int `default:"2" help:"Indent width for JSON output (0 for compact)." short:"i"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := j.load(ctx)
	if err != nil {
		return err
	}

	err = doc.FormatJSON(ctx, streamsFrom(ctx).Out, j.Indent)
	if err != nil {
		return ErrWriteFormat.Wrap(err).With(slog.String("format", "json"))
	}

	return nil
}

// YAML formats input as a YAML sequence of statements.
type YAML struct {
	Input `embed:""`

	Indent int `default:"2" help:"Indent width for YAML output (0 for flow style)." short:"i"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := y.load(ctx)
	if err != nil {
		return err
	}

	err = doc.FormatYAML(ctx, streamsFrom(ctx).Out, y.Indent)
	if err != nil {
		return ErrWriteFormat.Wrap(err).With(slog.String("format", "yaml"))
	}

	return nil
}
