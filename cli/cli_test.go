package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/cmakepm/log"
	"github.com/ardnew/cmakepm/pkg"
	"github.com/ardnew/cmakepm/project"
)

// TestMain points the user configuration and cache directories at a
// temporary directory so Run never touches the real ones.
func TestMain(m *testing.M) {
	home, err := os.MkdirTemp("", "cmake-pm-cli-*")
	if err != nil {
		panic(err)
	}

	for _, key := range []string{"HOME", "XDG_CONFIG_HOME", "XDG_CACHE_HOME"} {
		_ = os.Setenv(key, home)
	}

	code := m.Run()

	_ = os.RemoveAll(home)
	os.Exit(code)
}

// run calls Run and reports the exit code kong requested, or -1.
func run(t *testing.T, args ...string) (int, error) {
	t.Helper()
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	code := -1
	err := Run(context.Background(), func(c int) { code = c }, args...)

	return code, err
}

func TestRun_New_AddClass(t *testing.T) {
	parent := t.TempDir()

	code, err := run(t, "--log-level=error", "new", "--dir", parent, "--cmake-version", "3.28", "app")
	require.NoError(t, err)
	assert.Equal(t, -1, code)

	dir := filepath.Join(parent, "app")

	code, err = run(t, "--log-level=error", "add-class", "--dir", dir, "engine")
	require.NoError(t, err)
	assert.Equal(t, -1, code)

	text, err := project.LoadManifest(filepath.Join(dir, project.ManifestName))
	require.NoError(t, err)
	assert.Equal(t,
		"cmake_minimum_required(VERSION 3.28)\nproject(app)\nadd_executable(app main.cpp engine.cpp engine.h)",
		text,
	)
}

func TestRun_Reload(t *testing.T) {
	_, err := run(t, "--log-level=error", "reload")
	require.NoError(t, err)
}

func TestRun_FmtWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), project.ManifestName)
	require.NoError(t, os.WriteFile(path, []byte("project( p )\n\n\nadd_executable(p  m.cpp)\n"), 0o644))

	_, err := run(t, "--log-level=error", "fmt", "native", "--write", path)
	require.NoError(t, err)

	text, err := project.LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "project(p)\nadd_executable(p m.cpp)", text)
}

func TestRun_Init(t *testing.T) {
	conf := pkg.ConfigPath(baseConfig + ".yaml")
	t.Cleanup(func() { _ = os.Remove(conf) })

	_, err := run(t, "--log-level=warn", "--no-log-pretty", "init", "--force")
	require.NoError(t, err)

	content, err := os.ReadFile(conf)
	require.NoError(t, err)
	assert.Contains(t, string(content), "log-level: warn")
	assert.Contains(t, string(content), "log-pretty: false")
}

func TestRun_EnvVars(t *testing.T) {
	t.Setenv(pkg.EnvPrefix()+"_LOG_LEVEL", "error")

	parent := t.TempDir()

	_, err := run(t, "new", "--dir", parent, "envapp")
	require.NoError(t, err)
	assert.True(t, project.IsProjectDir(filepath.Join(parent, "envapp")))
	assert.Equal(t, log.LevelError, log.Default().Level())
}

func TestRun_UnknownCommand(t *testing.T) {
	_, err := run(t, "--log-level=error", "frobnicate")
	require.Error(t, err)
}

func TestRun_Version(t *testing.T) {
	code, _ := run(t, "--version")
	assert.Equal(t, 0, code)
}
