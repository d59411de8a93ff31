package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Serialize renders statements as manifest text: one statement per line,
// joined by "\n", without a trailing newline.
func Serialize(stmts []*Statement) string {
	var sb strings.Builder

	for i, s := range stmts {
		if i > 0 {
			sb.WriteByte('\n')
		}

		s.writeTo(&sb)
	}

	return sb.String()
}

// String renders s as name(arg1 arg2 ... argN).
func (s *Statement) String() string {
	var sb strings.Builder

	s.writeTo(&sb)

	return sb.String()
}

func (s *Statement) writeTo(sb *strings.Builder) {
	sb.WriteString(s.Kind.String())
	sb.WriteByte('(')
	sb.WriteString(strings.Join(s.Args, " "))
	sb.WriteByte(')')
}

// String renders d as manifest text. See [Serialize].
func (d *Document) String() string {
	return Serialize(d.statements())
}

// Format writes d in native manifest syntax to w.
func (d *Document) Format(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, d.String())

	return err
}

// record is the structured (JSON/YAML) form of a Statement.
type record struct {
	Function  string   `json:"function"  yaml:"function"`
	Arguments []string `json:"arguments" yaml:"arguments,flow"`
}

// records converts d to its structured form. Argument lists are never nil so
// they encode as empty lists rather than null.
func (d *Document) records() []record {
	out := make([]record, 0, d.Len())

	for _, s := range d.All() {
		args := s.Args
		if args == nil {
			args = []string{}
		}

		out = append(out, record{Function: s.Kind.String(), Arguments: args})
	}

	return out
}

// MarshalJSON implements json.Marshaler for Document.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.records())
}

// FormatJSON writes d as a JSON array of {function, arguments} objects.
func (d *Document) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(d.records(), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(d.records())
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes d as a YAML sequence of {function, arguments} mappings.
func (d *Document) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, d.records(), opts...)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
