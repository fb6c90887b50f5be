package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optbst/loader"
	"github.com/katalvlaran/optbst/obst"
	"github.com/katalvlaran/optbst/report"
)

const knownInput = `# four keys, weights 4 2 6 3
10 4
20 2
30 6
40 3
`

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuild_Text(t *testing.T) {
	path := writeFile(t, "input.txt", knownInput)

	stdout, stderr, err := execute(t, "build", path, "--workers", "2")
	require.NoError(t, err)

	assert.Contains(t, stdout, "total cost: 26\n")
	assert.Contains(t, stdout, "workers:    2\n")
	assert.Contains(t, stdout, "levels:\n(30/1)\n(10/1) (40/1)\n(20/1)\n")
	assert.Contains(t, stdout, "run:        ")
	assert.Contains(t, stderr, "table fill started")
	assert.Contains(t, stderr, "run_id=")
	assert.NotContains(t, stderr, "wave done", "debug lines need --verbose")
}

func TestBuild_Verbose(t *testing.T) {
	path := writeFile(t, "input.txt", knownInput)
	_, stderr, err := execute(t, "build", path, "-w", "1", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "wave done")
}

func TestBuild_JSONInOrder(t *testing.T) {
	path := writeFile(t, "input.txt", knownInput)

	stdout, _, err := execute(t, "build", path, "--format", "json", "--order", "in", "-w", "3")
	require.NoError(t, err)

	snap, err := report.Decode(bytes.NewBufferString(stdout), report.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "26", snap.TotalCost)
	assert.Equal(t, 3, snap.Workers)
	assert.Equal(t, "in", snap.Order)
	assert.Equal(t, []string{"10", "20", "30", "40"}, snap.Traversal)
}

func TestBuild_InvalidWorkers(t *testing.T) {
	path := writeFile(t, "input.txt", knownInput)
	_, _, err := execute(t, "build", path, "--workers", "0")
	require.ErrorIs(t, err, obst.ErrInvalidWorkerCount)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestBuild_ParseError(t *testing.T) {
	path := writeFile(t, "input.txt", "1 1\n2 3/0\n")
	_, _, err := execute(t, "build", path)
	require.ErrorIs(t, err, loader.ErrParse)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "line 2")
}

func TestBuild_MissingFile(t *testing.T) {
	_, _, err := execute(t, "build", filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestBuild_BadFlags(t *testing.T) {
	path := writeFile(t, "input.txt", knownInput)

	_, _, err := execute(t, "build", path, "--format", "xml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, "build", path, "--order", "post")
	require.ErrorIs(t, err, obst.ErrUnknownOrder)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, "build")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")

	_, _, err = execute(t, "build", path, "extra.txt")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

// TestUsageErrors verifies cobra's own argument and flag errors exit with 2.
func TestUsageErrors(t *testing.T) {
	path := writeFile(t, "input.txt", knownInput)

	cases := map[string][]string{
		"unknown flag":         {"build", path, "--bogus"},
		"unknown shorthand":    {"build", path, "-x"},
		"bad int value":        {"build", path, "--workers", "many"},
		"missing flag value":   {"build", path, "--workers"},
		"unknown global flag":  {"--nope", "version"},
		"compare missing arg":  {"compare"},
		"compare unknown flag": {"compare", path, "--strict"},
		"version extra arg":    {"version", "now"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err), err.Error())
		})
	}
}

func TestBuild_StrictOrder(t *testing.T) {
	path := writeFile(t, "input.txt", "2 1\n1 1\n")

	_, _, err := execute(t, "build", path, "--strict", "-w", "1")
	require.ErrorIs(t, err, obst.ErrKeysNotSorted)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, _, err = execute(t, "build", path, "-w", "1")
	require.NoError(t, err)
}

// TestBuild_Precedence checks flag > config > input file for workers.
func TestBuild_Precedence(t *testing.T) {
	input := writeFile(t, "input.yaml", `
workers: 5
entries:
  - {key: 10, weight: 4}
  - {key: 20, weight: 2}
  - {key: 30, weight: 6}
  - {key: 40, weight: 3}
`)
	config := writeFile(t, "config.yaml", "workers: 3\nformat: json\norder: pre\n")

	stdout, _, err := execute(t, "build", input, "--format", "json")
	require.NoError(t, err)
	snap, err := report.Decode(bytes.NewBufferString(stdout), report.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 5, snap.Workers, "input file workers")

	stdout, _, err = execute(t, "build", input, "--config", config)
	require.NoError(t, err)
	snap, err = report.Decode(bytes.NewBufferString(stdout), report.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Workers, "config workers")
	assert.Equal(t, "pre", snap.Order, "config order")

	stdout, _, err = execute(t, "build", input, "--config", config, "-w", "2", "--order", "level")
	require.NoError(t, err)
	snap, err = report.Decode(bytes.NewBufferString(stdout), report.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Workers, "flag workers")
	assert.Empty(t, snap.Order)
}

func TestBuild_BadConfig(t *testing.T) {
	path := writeFile(t, "input.txt", knownInput)
	config := writeFile(t, "config.yaml", "workers: -1\n")

	_, _, err := execute(t, "build", path, "--config", config)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, "build", path, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCompare(t *testing.T) {
	path := writeFile(t, "input.txt", knownInput)

	stdout, _, err := execute(t, "compare", path, "--workers", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "keys:       4\n")
	assert.Contains(t, stdout, "(3 workers)")
	assert.Contains(t, stdout, "total cost: 26\n")
	assert.Contains(t, stdout, "identical:  true\n")
}

func TestCompare_InvalidWorkers(t *testing.T) {
	path := writeFile(t, "input.txt", knownInput)
	_, _, err := execute(t, "compare", path, "--workers", "-1")
	require.ErrorIs(t, err, obst.ErrInvalidWorkerCount)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "optbst "+Version+"\n", stdout)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "x", assert.AnError)))
	assert.Equal(t, "x: "+assert.AnError.Error(), WrapExitError(ExitFailure, "x", assert.AnError).Error())
	assert.Equal(t, "bare", (&ExitError{Code: ExitFailure, Message: "bare"}).Error())
}
