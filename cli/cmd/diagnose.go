package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/cmakepm/manifest"
)

// diagnose writes the source excerpt of a manifest parse error to the error
// stream, with the caret line highlighted when the stream is a terminal.
// Errors that carry no source location are ignored.
func diagnose(ctx context.Context, err error) {
	var pe *manifest.ParseError
	if !errors.As(err, &pe) {
		return
	}

	snippet := pe.Snippet()
	if snippet == "" {
		return
	}

	w := streamsFrom(ctx).Err
	style := lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	fmt.Fprintln(w, style.Render(snippet))
}
