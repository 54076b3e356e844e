package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInputs(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"warehouses.csv": "WarehouseName,City,Resource,Quantity\nW1,A,water,100\n",
		"relief.csv":     "AreaName,City,Resource,Quantity,People,Urgency\nR1,C,water,40,200,5\n",
		"routes.csv":     "From,To,Distance\nA,B,4\nB,C,6\n",
	}
	var paths []string
	for _, name := range []string{"warehouses.csv", "relief.csv", "routes.csv"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(files[name]), 0o644))
		paths = append(paths, p)
	}
	return paths
}

func TestRunJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(writeInputs(t), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var out struct {
		Allocations []struct {
			Center    string   `json:"center"`
			Allocated int      `json:"allocated"`
			Path      []string `json:"path"`
		} `json:"allocations"`
		Summary struct {
			CoveragePct int `json:"coveragePct"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out.Allocations, 1)
	assert.Equal(t, 40, out.Allocations[0].Allocated)
	assert.Equal(t, []string{"A", "B", "C"}, out.Allocations[0].Path)
	assert.Equal(t, 100, out.Summary.CoveragePct)
}

func TestRunText(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := append([]string{"-format", "text"}, writeInputs(t)...)
	require.Equal(t, 0, run(args, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "TOTAL")
}

func TestRunMissingArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"only-one.csv"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "usage:")
	assert.Empty(t, stdout.String())
}

func TestRunUnreadableFile(t *testing.T) {
	paths := writeInputs(t)
	paths[1] = filepath.Join(t.TempDir(), "missing.csv")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run(paths, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "error:")
	assert.Empty(t, stdout.String())
}
