package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/nnmath/io"
)

func TestGetModeName(t *testing.T) {
	query, example := "", ""
	vars := map[string]*string{"Query": &query, "ExampleConfig": &example}

	_, err := getModeName(vars)
	assert.Error(t, err)

	query = "query.cfg"
	name, err := getModeName(vars)
	require.NoError(t, err)
	assert.Equal(t, "Query", name)

	example = "Shapes"
	_, err = getModeName(vars)
	assert.Error(t, err)
}

// queryConfig returns a parsed example config whose files all live in dir.
func queryConfig(t *testing.T, dir, points string) *io.QueryWrapper {
	t.Helper()
	text := io.ExampleQueryFile + "\n\n" + io.ExampleShapesFile + "\n"
	wrap, err := io.ParseQueryConfig(text)
	require.NoError(t, err)

	con := &wrap.Query
	con.PointsFile = points
	con.Output = filepath.Join(dir, "results.txt")
	con.CrossingsFile = filepath.Join(dir, "crossings.txt")
	con.LogFile = filepath.Join(dir, "log.out")
	return wrap
}

func TestQueryMain(t *testing.T) {
	dir := t.TempDir()
	points := filepath.Join(dir, "points.txt")
	require.NoError(t, os.WriteFile(points, []byte("0 0 0\n1 -2 3\n"), 0644))

	wrap := queryConfig(t, dir, points)
	fg := &FileGroup{}
	require.NoError(t, setupFiles(fg, &wrap.Query, ""))
	err := queryMain[float64](wrap, fg)
	fg.Close()
	require.NoError(t, err)

	results, err := os.ReadFile(wrap.Query.Output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(results)), "\n")
	assert.Len(t, lines, 1+2*6)

	crossings, err := os.ReadFile(wrap.Query.CrossingsFile)
	require.NoError(t, err)
	assert.Contains(t, string(crossings), "ball Line x_axis 0 2")

	logText, err := os.ReadFile(wrap.Query.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(logText), "Read 2 points and 6 shapes")
}

func TestQueryMainFailureFlushesProfile(t *testing.T) {
	dir := t.TempDir()
	wrap := queryConfig(t, dir, filepath.Join(dir, "missing.txt"))
	profile := filepath.Join(dir, "cpu.prof")

	fg := &FileGroup{}
	require.NoError(t, setupFiles(fg, &wrap.Query, profile))
	err := queryMain[float32](wrap, fg)
	fg.Close()
	assert.Error(t, err)

	info, err := os.Stat(profile)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
