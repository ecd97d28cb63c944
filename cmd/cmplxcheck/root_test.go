package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-highway-cmplx/hwy/contrib/cmplx/cases"
	"github.com/ajroetker/go-highway-cmplx/internal/conformance"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunPasses(t *testing.T) {
	for _, args := range [][]string{nil, {"run"}, {"run", "--repeat", "2", "--log-level", "debug"}} {
		stdout, _, err := execute(t, args...)
		require.NoError(t, err, "args %v", args)
		assert.True(t, strings.HasPrefix(stdout, "PASS float32,float64,edges "), "stdout %q", stdout)
		assert.Contains(t, stdout, "vectors=137")
	}
}

func TestRunRepeatFlag(t *testing.T) {
	stdout, stderr, err := execute(t, "--repeat", "2", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stdout, "passes=2")
	assert.Contains(t, stderr, "suite passed")
}

func TestRunNoDouble(t *testing.T) {
	stdout, _, err := execute(t, "run", "--no-double")
	require.NoError(t, err)
	assert.Contains(t, stdout, "PASS float32 ")
	assert.Contains(t, stdout, "vectors=0")
}

func TestRunEnvOverride(t *testing.T) {
	t.Setenv("CMPLX_NO_FLOAT32", "1")
	stdout, _, err := execute(t, "run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "PASS float64,edges ")
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("float64: false\nlog10_broken: true\n"), 0o644))

	stdout, _, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "PASS float32,edges ")
}

func TestRunBadConfig(t *testing.T) {
	_, _, err := execute(t, "--repeat", "0", "--log-level", "loud")
	require.Error(t, err)
	assert.Equal(t, exitUsage, exitCode(err))
	assert.Contains(t, err.Error(), "configuration")
}

func TestExitCode(t *testing.T) {
	m := &conformance.Mismatch{Suite: conformance.SuiteEdges, Index: 3}
	assert.Equal(t, exitMismatch, exitCode(errors.Wrap(m, "pass 1")))
	assert.Equal(t, exitUsage, exitCode(usageError{errors.New("bad")}))
	assert.Equal(t, exitMismatch, exitCode(errors.New("other")))
}

func TestCasesCommand(t *testing.T) {
	stdout, _, err := execute(t, "cases")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, cases.Len()+1)
	assert.True(t, strings.HasPrefix(lines[0], "INDEX"))
	assert.Contains(t, stdout, "(-Inf+0i)")
	assert.Contains(t, stdout, "non_zero_nan")
}

func TestJoinSuites(t *testing.T) {
	assert.Equal(t, "(none)", joinSuites(nil))
	assert.Equal(t, "float32,edges", joinSuites([]conformance.Suite{conformance.SuiteFloat32, conformance.SuiteEdges}))
}
