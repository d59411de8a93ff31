package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/cmakepm/manifest"
	"github.com/ardnew/cmakepm/project"
)

const messy = "cmake_minimum_required(VERSION   3.30)\n\n\tproject( app )\nadd_executable(app\n main.cpp  util.cpp)"

const canonical = "cmake_minimum_required(VERSION 3.30)\nproject(app)\nadd_executable(app main.cpp util.cpp)"

func writeManifest(t *testing.T, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), project.ManifestName)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	return path
}

func TestNative_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		where string
		want  string
	}{
		{name: "canonical", want: canonical + "\n"},
		{name: "filtered", where: `kind == "project"`, want: "project(app)\n"},
		{name: "filtered empty", where: `index > 10`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, out, _ := streams("")
			cmd := &Native{Input: Input{Source: writeManifest(t, messy), Where: tt.where}}

			require.NoError(t, cmd.Run(ctx))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestNative_Run_Stdin(t *testing.T) {
	t.Parallel()

	ctx, out, _ := streams(messy)

	require.NoError(t, (&Native{Input: Input{Source: stdinSource}}).Run(ctx))
	assert.Equal(t, canonical+"\n", out.String())
}

func TestNative_Run_Write(t *testing.T) {
	t.Parallel()

	ctx, out, _ := streams("")
	path := writeManifest(t, messy)

	require.NoError(t, (&Native{Input: Input{Source: path}, Write: true}).Run(ctx))
	assert.Empty(t, out.String())

	text, err := project.LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, canonical, text)
}

func TestNative_Run_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  *Native
		want error
	}{
		{
			name: "write stdin",
			cmd:  &Native{Input: Input{Source: stdinSource}, Write: true},
			want: ErrWriteStdin,
		},
		{
			name: "write filtered",
			cmd:  &Native{Input: Input{Source: "CMakeLists.txt", Where: "true"}, Write: true},
			want: ErrWriteFiltered,
		},
		{
			name: "missing source",
			cmd:  &Native{Input: Input{Source: filepath.Join(t.TempDir(), project.ManifestName)}},
			want: project.ErrManifestMissing,
		},
		{
			name: "bad filter",
			cmd:  &Native{Input: Input{Source: writeManifest(t, canonical), Where: "kind =="}},
			want: manifest.ErrFilterCompile,
		},
		{
			name: "malformed",
			cmd:  &Native{Input: Input{Source: writeManifest(t, "project(a))")}},
			want: manifest.ErrUnmatchedClose,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, out, _ := streams("")

			require.ErrorIs(t, tt.cmd.Run(ctx), tt.want)
			assert.Empty(t, out.String())
		})
	}
}

func TestJSON_Run(t *testing.T) {
	t.Parallel()

	ctx, out, _ := streams("")
	cmd := &JSON{Input: Input{Source: writeManifest(t, messy)}, Indent: 0}

	require.NoError(t, cmd.Run(ctx))
	assert.JSONEq(t, `[
		{"function": "cmake_minimum_required", "arguments": ["VERSION", "3.30"]},
		{"function": "project", "arguments": ["app"]},
		{"function": "add_executable", "arguments": ["app", "main.cpp", "util.cpp"]}
	]`, out.String())
}

func TestYAML_Run(t *testing.T) {
	t.Parallel()

	ctx, out, _ := streams("")
	cmd := &YAML{Input: Input{Source: writeManifest(t, messy), Where: `kind != "project"`}, Indent: 2}

	require.NoError(t, cmd.Run(ctx))

	var got []struct {
		Function  string   `yaml:"function"`
		Arguments []string `yaml:"arguments"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "cmake_minimum_required", got[0].Function)
	assert.Equal(t, []string{"app", "main.cpp", "util.cpp"}, got[1].Arguments)
}

func TestNative_Run_StdinInvalidUTF8(t *testing.T) {
	t.Parallel()

	ctx, out, _ := streams("project(caf\xe9)")

	err := (&Native{Input: Input{Source: stdinSource}}).Run(ctx)
	require.ErrorIs(t, err, ErrReadSource)
	require.ErrorIs(t, err, project.ErrManifestText)
	assert.Empty(t, out.String())
}
