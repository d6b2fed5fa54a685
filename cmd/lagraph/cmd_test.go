package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagraph/internal/config"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut strings.Builder
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

const network = `A B ROAD
B D ROAD
A C RAIL
C D ROAD
D E ROAD
`

func TestBFSCmd(t *testing.T) {
	chain := writeTemp(t, "chain.txt", "a b\nb c\nc d\nx y\n")

	out, _, err := execute(t, "bfs", "--edges", chain, "--source", "a")
	require.NoError(t, err)
	assert.Equal(t, "a\t0\nb\t1\nc\t2\nd\t3\n", out)

	out, _, err = execute(t, "bfs", "--edges", chain, "--source", "a", "--parents", "--max-level", "2")
	require.NoError(t, err)
	assert.Equal(t, "a\t0\ta\nb\t1\ta\nc\t2\tb\n", out)

	out, _, err = execute(t, "bfs", "--edges", chain, "--source", "a", "--dest", "b")
	require.NoError(t, err)
	assert.Equal(t, "a\t0\nb\t1\n", out)
}

func TestBFSCmd_Relations(t *testing.T) {
	path := writeTemp(t, "net.txt", network)

	out, _, err := execute(t, "bfs", "--edges", path, "--source", "A", "--relation", "RAIL")
	require.NoError(t, err)
	assert.Equal(t, "A\t0\nC\t1\n", out)
}

func TestBFSCmd_Errors(t *testing.T) {
	path := writeTemp(t, "net.txt", network)

	_, _, err := execute(t, "bfs", "--edges", path, "--source", "Z")
	assert.Error(t, err)

	_, _, err = execute(t, "bfs", "--edges", path)
	assert.ErrorContains(t, err, "source")

	_, _, err = execute(t, "bfs", "--edges", path, "--source", "A", "--workers", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "bfs", "--edges", path, "--source", "A", "--max-level", "-1")
	assert.Error(t, err)
}

func TestPathCmd(t *testing.T) {
	path := writeTemp(t, "net.txt", network)

	out, _, err := execute(t, "path", "--edges", path, "--source", "A", "--dest", "E")
	require.NoError(t, err)
	assert.Equal(t, "A -[ROAD]-> B -[ROAD]-> D -[ROAD]-> E\n", out)

	out, _, err = execute(t, "path", "--edges", path, "--source", "A", "--dest", "E", "--relation", "RAIL")
	require.NoError(t, err)
	assert.Equal(t, "no path\n", out)

	out, _, err = execute(t, "path", "--edges", path, "--source", "A", "--dest", "E", "--max-hops", "2")
	require.NoError(t, err)
	assert.Equal(t, "no path\n", out)

	out, _, err = execute(t, "path", "--edges", path, "--source", "C", "--dest", "C")
	require.NoError(t, err)
	assert.Equal(t, "C\n", out)
}

func TestRoot_ConfigAndLogging(t *testing.T) {
	path := writeTemp(t, "net.txt", network)
	cfg := writeTemp(t, "lagraph.yaml", "log_level: info\nworkers: 2\ndefault_relation: ROAD\n")

	_, stderr, err := execute(t, "--config", cfg, "path", "--edges", path, "--source", "A", "--dest", "E")
	require.NoError(t, err)
	assert.Contains(t, stderr, "path found")
	assert.Contains(t, stderr, "hops=3")

	_, stderr, err = execute(t, "--config", cfg, "--log-level", "error", "path", "--edges", path, "--source", "A", "--dest", "E")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "path found")

	t.Setenv(config.EnvLogLevel, "debug")
	_, stderr, err = execute(t, "bfs", "--edges", path, "--source", "A")
	require.NoError(t, err)
	assert.Contains(t, stderr, "bfs complete")
	assert.Contains(t, stderr, "bfs: done")
}
