package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestGenerate_PrintsAdjacency(t *testing.T) {
	out, _, err := runCLI(t, "generate", "--seed", "42")
	require.NoError(t, err)

	var doc generated
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, int64(42), doc.Seed)
	assert.Equal(t, 10, doc.Config.Nodes)
	assert.Len(t, doc.Adjacency, 10)
	assert.True(t, doc.Stats.Frozen)
	assert.NotEmpty(t, doc.Components)
	for u, nbrs := range doc.Adjacency {
		for v, w := range nbrs {
			assert.Equal(t, w, doc.Adjacency[v][u], "symmetric %d—%d", u, v)
		}
	}

	again, _, err := runCLI(t, "generate", "--seed", "42")
	require.NoError(t, err)
	var doc2 generated
	require.NoError(t, yaml.Unmarshal([]byte(again), &doc2))
	assert.Equal(t, doc.Adjacency, doc2.Adjacency)
}

func TestGenerate_FlagOverridesAndInvalid(t *testing.T) {
	out, _, err := runCLI(t, "generate", "--seed", "1", "--nodes", "20", "--max-edges", "6", "--non-initiators", "0")
	require.NoError(t, err)
	var doc generated
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Adjacency, 20)
	assert.Equal(t, 0, doc.Config.NonInitiators)

	_, _, err = runCLI(t, "generate", "--seed", "1", "--nodes", "4")
	assert.Error(t, err, "max_edges=4 needs at least 5 nodes")
}

func TestPath_GeneratedGraph(t *testing.T) {
	out, _, err := runCLI(t, "path", "0", "0", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, "total cost: 0\n", out)

	out, _, err = runCLI(t, "path", "0", "4", "--seed", "7")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "total cost: ") || strings.HasPrefix(last, "no path"), out)

	_, _, err = runCLI(t, "path", "0", "99", "--seed", "7")
	assert.Error(t, err)
}

func TestSnapshots_SaveListQueryDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")

	out, _, err := runCLI(t, "--store", dir, "generate", "--seed", "5", "--save")
	require.NoError(t, err)
	var doc generated
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))

	out, _, err = runCLI(t, "--store", dir, "snapshots")
	require.NoError(t, err)
	assert.Contains(t, out, doc.Snapshot)

	out, _, err = runCLI(t, "--store", dir, "path", "0", "1", "--snapshot", doc.Snapshot)
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, _, err = runCLI(t, "--store", dir, "delete", doc.Snapshot)
	require.NoError(t, err)
	out, _, err = runCLI(t, "--store", dir, "snapshots")
	require.NoError(t, err)
	assert.Equal(t, "no snapshots\n", out)

	_, _, err = runCLI(t, "--store", dir, "path", "0", "1", "--snapshot", doc.Snapshot)
	assert.Error(t, err)
	_, _, err = runCLI(t, "--store", dir, "delete", "not-a-uuid")
	assert.Error(t, err)
}

func TestStoreRequired(t *testing.T) {
	_, _, err := runCLI(t, "snapshots")
	assert.ErrorContains(t, err, "no snapshot store configured")
}

func TestConfigFileAndLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ghertil.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\ngenerator:\n  nodes: 12\nseed: 3\n"), 0o600))

	out, logs, err := runCLI(t, "--config", path, "--log-format", "json", "--log-level", "debug", "generate")
	require.NoError(t, err)
	var doc generated
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, int64(3), doc.Seed)
	assert.Len(t, doc.Adjacency, 12)
	assert.Contains(t, logs, `"msg":"graph generated"`)

	_, _, err = runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "generate")
	assert.Error(t, err)
}
