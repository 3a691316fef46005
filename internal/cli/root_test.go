package cli

import (
	"bytes"
	"testing"

	"github.com/cedi-search/addtarget/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCwd        = "/work"
	testConfigPath = "/home/dev/.addtarget/config.yaml"
)

type testRun struct {
	fs     afero.Fs
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newTestRun(t *testing.T) *testRun {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(testCwd, 0755))
	return &testRun{fs: fsys}
}

func (r *testRun) run(args ...string) int {
	env := Env{
		Cwd:        testCwd,
		Stdout:     &r.stdout,
		Stderr:     &r.stderr,
		Fs:         r.fs,
		ConfigPath: testConfigPath,
	}
	return Run(args, env, BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-10-19"})
}

func (r *testRun) cwdEntries(t *testing.T) []string {
	t.Helper()
	entries, err := afero.ReadDir(r.fs, testCwd)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRunWrongArgumentCount(t *testing.T) {
	tests := map[string][]string{
		"none": nil,
		"two":  {"a", "b"},
		"many": {"a", "b", "c"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			r := newTestRun(t)

			code := r.run(args...)

			assert.Equal(t, ExitUsage, code)
			assert.Equal(t, "Requires exactly one argument\n", r.stdout.String())
			assert.Empty(t, r.cwdEntries(t))
		})
	}
}

func TestRunGeneratesTarget(t *testing.T) {
	r := newTestRun(t)

	code := r.run("parser")
	require.Equal(t, ExitSuccess, code, "stderr: %s", r.stderr.String())

	want, err := scaffold.Render("parser")
	require.NoError(t, err)

	got, err := afero.ReadFile(r.fs, "/work/parser/parser.go")
	require.NoError(t, err)
	assert.Equal(t, want, string(got))

	content := string(got)
	assert.Contains(t, content, "package parser")
	assert.Contains(t, content, "type Parser struct")
	assert.Contains(t, content, "func NewParser(")
	assert.Contains(t, content, `String() string {return "Parser"}`)

	assert.Contains(t, r.stdout.String(), "Created target parser at parser/\n  parser.go\n")
	assert.Contains(t, r.stdout.String(), "Add Parser to the engine's target list")
	assert.Empty(t, r.stderr.String())
}

func TestRunTwiceLeavesOneDirectory(t *testing.T) {
	r := newTestRun(t)

	require.Equal(t, ExitSuccess, r.run("jiji"))
	first, err := afero.ReadFile(r.fs, "/work/jiji/jiji.go")
	require.NoError(t, err)

	require.Equal(t, ExitSuccess, r.run("jiji"))
	second, err := afero.ReadFile(r.fs, "/work/jiji/jiji.go")
	require.NoError(t, err)

	assert.Equal(t, []string{"jiji"}, r.cwdEntries(t))
	assert.Equal(t, first, second)
}

func TestRunInvalidTargetName(t *testing.T) {
	for _, name := range []string{"..", "a/b", ""} {
		r := newTestRun(t)

		code := r.run(name)

		assert.Equal(t, ExitUsage, code, "target %q", name)
		assert.Contains(t, r.stdout.String(), "invalid target name")
		assert.Empty(t, r.cwdEntries(t))
	}
}

func TestRunTargetIsRegularFile(t *testing.T) {
	r := newTestRun(t)
	require.NoError(t, afero.WriteFile(r.fs, "/work/deus", []byte("keep"), 0644))

	code := r.run("deus")

	assert.Equal(t, ExitFilesystem, code)
	assert.Contains(t, r.stderr.String(), "Error: ")
	assert.Contains(t, r.stderr.String(), "not a directory")

	data, err := afero.ReadFile(r.fs, "/work/deus")
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestRunInvalidConfigWritesNothing(t *testing.T) {
	r := newTestRun(t)
	require.NoError(t, r.fs.MkdirAll("/home/dev/.addtarget", 0755))
	require.NoError(t, afero.WriteFile(r.fs, testConfigPath, []byte("log_level: loud\n"), 0644))

	code := r.run("parser")

	assert.Equal(t, ExitConfig, code)
	assert.Contains(t, r.stderr.String(), "/log_level")
	assert.Empty(t, r.cwdEntries(t))
}

func TestRunDebugLogging(t *testing.T) {
	t.Setenv("ADDTARGET_LOG_LEVEL", "DEBUG")
	r := newTestRun(t)

	require.Equal(t, ExitSuccess, r.run("oraimo"))

	assert.Contains(t, r.stderr.String(), "created target directory")
	assert.Contains(t, r.stderr.String(), "target=oraimo")
}

func TestRunVersion(t *testing.T) {
	r := newTestRun(t)

	code := r.run("--version")

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "addtarget version 1.2.3 (commit: abc123, built: 2026-10-19)\n", r.stdout.String())
	assert.Empty(t, r.cwdEntries(t))
}

func TestRunVersionWithTargets(t *testing.T) {
	tests := map[string][]string{
		"one target":  {"--version", "parser"},
		"two targets": {"--version", "a", "b"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			r := newTestRun(t)

			code := r.run(args...)

			assert.Equal(t, ExitUsage, code)
			assert.Equal(t, "Requires exactly one argument\n", r.stdout.String())
			assert.Empty(t, r.cwdEntries(t))
		})
	}
}

func TestRunUnknownFlag(t *testing.T) {
	r := newTestRun(t)

	code := r.run("--force", "parser")

	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, r.stdout.String(), "unknown flag")
	assert.Empty(t, r.cwdEntries(t))
}
