package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level info, got %v", logger.Level())
	}

	if logger.caller {
		t.Error("expected caller disabled by default")
	}

	if logger.Format() != FormatText {
		t.Errorf("expected default format text, got %v", logger.Format())
	}

	if !logger.pretty {
		t.Error("expected pretty enabled by default")
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelDebug), WithPretty(false))

	logger.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged after setting level to Debug")
	}

	buf.Reset()
	logger2 := Make(&buf, WithLevel(LevelError), WithPretty(false))
	logger2.Info("info message")
	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger2.Error("error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_Trace_RendersTraceLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf,
		WithLevel(LevelTrace), WithFormat(FormatJSON), WithPretty(false))

	logger.Trace("scan step")

	if !strings.Contains(buf.String(), `"level":"TRACE"`) {
		t.Errorf("expected TRACE level, got: %s", buf.String())
	}
}

func TestLogger_JSON_IncludesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatJSON), WithPretty(false))

	logger.Info("parsed", slog.Int("statements", 3))

	out := buf.String()
	for _, want := range []string{`"msg":"parsed"`, `"statements":3`, `"level":"INFO"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %s, got: %s", want, out)
		}
	}
}

func TestLogger_WithTimeLayout(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		contains string
		absent   string
	}{
		{"rfc3339 named", "RFC3339", "time=", ""},
		{"none disables", "none", "", "time="},
		{"empty disables", "", "", "time="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := Make(&buf, WithTimeLayout(tt.layout), WithPretty(false))
			logger.Info("test")

			output := buf.String()
			if tt.contains != "" && !strings.Contains(output, tt.contains) {
				t.Errorf("expected output to contain %q, got: %s", tt.contains, output)
			}

			if tt.absent != "" && strings.Contains(output, tt.absent) {
				t.Errorf("expected output to omit %q, got: %s", tt.absent, output)
			}
		})
	}
}

func TestLogger_WithCaller_IncludesSource(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithCaller(true), WithPretty(false))
	logger.Info("test message")

	if !strings.Contains(buf.String(), "source=") {
		t.Errorf("expected source attribute, got: %s", buf.String())
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatJSON), WithPretty(false)).
		With(slog.String("component", "manifest"))

	logger.Info("loaded")

	if !strings.Contains(buf.String(), `"component":"manifest"`) {
		t.Errorf("expected persistent attribute, got: %s", buf.String())
	}
}

func TestLogger_Wrap_OverridesConfiguration(t *testing.T) {
	var buf bytes.Buffer
	base := Make(&buf, WithLevel(LevelError), WithPretty(false))
	wrapped := base.Wrap(WithLevel(LevelDebug))

	if base.Level() != LevelError {
		t.Errorf("expected base level unchanged, got %v", base.Level())
	}

	wrapped.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("expected wrapped logger to log at debug level")
	}
}

func TestLogger_ZeroValue_Discards(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.InfoContext(context.Background(), "ignored")
	logger.Error("ignored")

	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level, got %v", logger.Level())
	}
}

func TestLogger_Pretty_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithPretty(true), WithTimeLayout("none"))

	logger.Info("created project", slog.String("name", "demo"), slog.Bool("build", true))

	out := buf.String()
	for _, want := range []string{"created project", "name", "demo", "true", "INFO"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected pretty output to contain %q, got: %s", want, out)
		}
	}

	if strings.Contains(out, `"demo"`) {
		t.Errorf("expected unquoted string values, got: %s", out)
	}
}

func TestLogger_Pretty_JSON_Groups(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithPretty(true), WithFormat(FormatJSON))

	logger.Warn("run failed", slog.Group("error", slog.String("cause", "boom")))

	out := buf.String()
	if !strings.HasPrefix(out, "{") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("expected a JSON-like object, got: %s", out)
	}

	for _, want := range []string{"run failed", "cause", "boom", "WARN"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected pretty JSON to contain %q, got: %s", want, out)
		}
	}
}
