package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const titlesCSV = `show_id,type,title,director,cast,country
s1,Movie,T1,"D1, D2","A, B",US
s2,Movie,T2,D1,"A, C","US, FR"
s3,TV Show,T3,,B,
`

type cliEnv struct {
	input   string
	results string
}

func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "titles.csv")
	require.NoError(t, os.WriteFile(input, []byte(titlesCSV), 0644))
	return cliEnv{input: input, results: filepath.Join(dir, "results")}
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"cooccur", "--quiet"}, args...))
	return out.String(), err
}

func exitCode(err error) int {
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return -1
}

func TestAllCommand(t *testing.T) {
	env := newCLIEnv(t)

	out, err := runApp(t, "all", "--input", env.input, "--results-dir", env.results, "--no-history")
	require.NoError(t, err)

	assert.Contains(t, out, "Q1: 3 actor records")
	assert.Contains(t, out, "Q2: 3 director records")
	for _, q := range []string{"q1", "q2"} {
		assert.FileExists(t, filepath.Join(env.results, q, "links.csv"))
		assert.FileExists(t, filepath.Join(env.results, q, "points.csv"))
		assert.FileExists(t, filepath.Join(env.results, q, "summary.yaml"))
	}
	assert.NoFileExists(t, filepath.Join(env.results, "cooccur.db"))
}

func TestNetworkCommand_KindAndGroupMode(t *testing.T) {
	env := newCLIEnv(t)

	_, err := runApp(t, "network", "--kind", "director", "--group-mode", "constant",
		"--input", env.input, "--results-dir", env.results, "--no-history")
	require.NoError(t, err)

	points, err := os.ReadFile(filepath.Join(env.results, "q2", "points.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Director,Group,Movies_Count\nD1,0,2\nD2,0,1\n", string(points))
}

func TestNetworkCommand_UsageErrors(t *testing.T) {
	env := newCLIEnv(t)
	base := []string{"--input", env.input, "--results-dir", env.results, "--no-history"}

	tests := []struct {
		name string
		args []string
	}{
		{"no selector", nil},
		{"both selectors", []string{"--question", "q1", "--kind", "actor"}},
		{"unknown question", []string{"--question", "q9"}},
		{"unknown kind", []string{"--kind", "writer"}},
		{"unknown group mode", []string{"--question", "q1", "--group-mode", "continent"}},
		{"non-positive top", []string{"--question", "q1", "--top", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"network"}, append(tt.args, base...)...)
			_, err := runApp(t, args...)
			require.Error(t, err)
			assert.Equal(t, 1, exitCode(err))
		})
	}
}

func TestNetworkCommand_MissingInputIsRuntimeError(t *testing.T) {
	env := newCLIEnv(t)

	_, err := runApp(t, "network", "--question", "q1", "--input", filepath.Join(env.results, "none.csv"),
		"--results-dir", env.results, "--no-history")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}

func TestHistoryCommands(t *testing.T) {
	env := newCLIEnv(t)
	dbPath := filepath.Join(env.results, "history.db")

	out, err := runApp(t, "runs", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No runs found")

	_, err = runApp(t, "run", "--db", dbPath)
	assert.Equal(t, 1, exitCode(err))
	assert.NoFileExists(t, dbPath)
	assert.NoDirExists(t, env.results)

	_, err = runApp(t, "network", "--question", "q1", "--input", env.input,
		"--results-dir", env.results, "--db", dbPath)
	require.NoError(t, err)

	out, err = runApp(t, "network", "--question", "q1", "--input", env.input,
		"--results-dir", env.results, "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Same input and options as run 1")

	out, err = runApp(t, "runs", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 2 runs")

	out, err = runApp(t, "run", "--db", dbPath, "1")
	require.NoError(t, err)
	assert.Contains(t, out, "q1")

	for _, arg := range []string{"abc", "1abc", "0", "-1"} {
		_, err = runApp(t, "run", "--db", dbPath, arg)
		assert.Equal(t, 1, exitCode(err), arg)
	}
}

func TestHistoryCommands_FollowResultsDir(t *testing.T) {
	env := newCLIEnv(t)

	_, err := runApp(t, "all", "--input", env.input, "--results-dir", env.results)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(env.results, "cooccur.db"))

	out, err := runApp(t, "runs", "--results-dir", env.results)
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 2 runs")

	out, err = runApp(t, "run", "--results-dir", env.results)
	require.NoError(t, err)
	assert.Contains(t, out, "q2")
}

func TestQuickstartCommand(t *testing.T) {
	out, err := runApp(t, "quickstart")
	require.NoError(t, err)
	assert.Contains(t, out, "cooccur network --question q1")
}
