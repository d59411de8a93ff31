package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by the pretty handlers. Styles are bound to a
// renderer for the handler's writer, so colors are dropped automatically when
// the output is not a terminal.
type palette struct {
	key, str, num, dur, when, yes, no lipgloss.Style
	level                             map[slog.Level]lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:  fg("8"),
		str:  fg("6"),
		num:  fg("3"),
		dur:  fg("5"),
		when: fg("4"),
		yes:  fg("2"),
		no:   fg("1"),
		level: map[slog.Level]lipgloss.Style{
			slog.LevelError: fg("1").Bold(true),
			slog.LevelWarn:  fg("3"),
			slog.LevelInfo:  fg("2"),
			slog.LevelDebug: fg("4"),
		},
	}
}

func (p palette) levelStyle(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.level[slog.LevelError]
	case l >= slog.LevelWarn:
		return p.level[slog.LevelWarn]
	case l >= slog.LevelInfo:
		return p.level[slog.LevelInfo]
	default:
		return p.level[slog.LevelDebug]
	}
}

// render formats a resolved attribute value with the style for its kind.
func (p palette) render(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return p.str.Render(v.String())

	case slog.KindInt64:
		return p.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return p.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return p.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return p.yes.Render("true")
		}

		return p.no.Render("false")

	case slog.KindDuration:
		return p.dur.Render(v.Duration().String())

	case slog.KindTime:
		return p.when.Render(v.Time().Format(time.RFC3339))

	default:
		return p.str.Render(v.String())
	}
}

// prettyBase holds what the text and JSON pretty handlers share.
type prettyBase struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	pal    palette
	attrs  []slog.Attr
	groups []string
}

func newPrettyBase(w io.Writer, opts *slog.HandlerOptions) prettyBase {
	return prettyBase{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
		pal:  newPalette(w),
	}
}

func (h *prettyBase) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}

	return level >= threshold
}

// builtins returns the time, level, source and message attributes of r,
// passed through the configured ReplaceAttr.
func (h *prettyBase) builtins(r slog.Record) []slog.Attr {
	attrs := make([]slog.Attr, 0, 4)

	if !r.Time.IsZero() {
		attrs = append(attrs, slog.Time(slog.TimeKey, r.Time))
	}

	attrs = append(attrs, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource && r.PC != 0 {
		if src := r.Source(); src != nil {
			attrs = append(attrs, slog.String(
				slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line),
			))
		}
	}

	attrs = append(attrs, slog.String(slog.MessageKey, r.Message))

	if h.opts.ReplaceAttr == nil {
		return attrs
	}

	out := attrs[:0]

	for _, a := range attrs {
		a = h.opts.ReplaceAttr(nil, a)
		if a.Key != "" {
			out = append(out, a)
		}
	}

	return out
}

// record returns every attribute of r in output order: builtins, handler
// attributes, then record attributes (group-qualified).
func (h *prettyBase) record(r slog.Record) []slog.Attr {
	attrs := append(h.builtins(r), h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, h.qualify(a))

		return true
	})

	return attrs
}

func (h *prettyBase) qualify(a slog.Attr) slog.Attr {
	for i := len(h.groups) - 1; i >= 0; i-- {
		a = slog.Attr{Key: h.groups[i], Value: slog.GroupValue(a)}
	}

	return a
}

func (h *prettyBase) styled(a slog.Attr) string {
	v := a.Value.Resolve()

	if a.Key == slog.LevelKey {
		if level, ok := v.Any().(slog.Level); ok {
			return h.pal.levelStyle(level).Render(level.String())
		}

		return h.pal.levelStyle(slog.Level(ParseLevel(v.String()))).Render(v.String())
	}

	return h.pal.render(v)
}

func (h *prettyBase) write(buf *bytes.Buffer) error {
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h prettyBase) withAttrs(attrs []slog.Attr) prettyBase {
	qualified := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	qualified = append(qualified, h.attrs...)

	for _, a := range attrs {
		qualified = append(qualified, h.qualify(a))
	}

	h.attrs = qualified

	return h
}

func (h prettyBase) withGroup(name string) prettyBase {
	h.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return h
}

// prettyTextHandler writes colorized key=value lines without quoting.
type prettyTextHandler struct{ prettyBase }

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{newPrettyBase(w, opts)}
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	for _, a := range h.record(r) {
		h.writeAttr(buf, "", a)
	}

	return h.write(buf)
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	v := a.Value.Resolve()

	if v.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, ga := range v.Group() {
			h.writeAttr(buf, prefix, ga)
		}

		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(h.pal.key.Render(prefix + a.Key))
	buf.WriteByte('=')
	buf.WriteString(h.styled(slog.Attr{Key: a.Key, Value: v}))
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{h.withAttrs(attrs)}
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	return &prettyTextHandler{h.withGroup(name)}
}

// prettyJSONHandler writes one colorized, indented object per record.
type prettyJSONHandler struct{ prettyBase }

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	return &prettyJSONHandler{newPrettyBase(w, opts)}
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	buf.WriteString("{")
	h.writeObject(buf, h.record(r), 1)
	buf.WriteString("\n}")

	return h.write(buf)
}

func (h *prettyJSONHandler) writeObject(
	buf *bytes.Buffer,
	attrs []slog.Attr,
	depth int,
) {
	indent := bytes.Repeat([]byte("  "), depth)

	for i, a := range attrs {
		if i > 0 {
			buf.WriteByte(',')
		}

		buf.WriteByte('\n')
		buf.Write(indent)
		buf.WriteString(h.pal.key.Render(a.Key))
		buf.WriteString(": ")

		v := a.Value.Resolve()
		if v.Kind() == slog.KindGroup {
			buf.WriteString("{")
			h.writeObject(buf, v.Group(), depth+1)
			buf.WriteByte('\n')
			buf.Write(indent)
			buf.WriteString("}")

			continue
		}

		buf.WriteString(h.styled(slog.Attr{Key: a.Key, Value: v}))
	}
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{h.withAttrs(attrs)}
}

func (h *prettyJSONHandler) WithGroup(name string) slog.Handler {
	return &prettyJSONHandler{h.withGroup(name)}
}
