package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoRoutes = "#####\n#S.##\n#..E#\n#####\n"

// writeMaze stores text in a temp file and returns its path.
func writeMaze(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

// runCLI executes run with the given stdin and returns stdout, stderr and the error.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(context.Background(), append([]string{"orientpath"}, args...), strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestRun_File(t *testing.T) {
	path := writeMaze(t, twoRoutes)

	out, stderr, err := runCLI(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "lowest score: 2003\ncells on optimal paths: 5\n", out)
	assert.Contains(t, stderr, "maze solved")
}

func TestRun_StdinAndRender(t *testing.T) {
	out, _, err := runCLI(t, twoRoutes, "--render", "-")
	require.NoError(t, err)
	assert.Equal(t,
		"lowest score: 2003\ncells on optimal paths: 5\n#####\n#OO##\n#OOO#\n#####\n",
		out)
}

func TestRun_InputFlagAndWeights(t *testing.T) {
	path := writeMaze(t, twoRoutes)

	out, _, err := runCLI(t, "", "--input", path, "--turn-cost", "10", "--move-cost", "2")
	require.NoError(t, err)
	// 2 + (10+2) + (10+2)
	assert.Contains(t, out, "lowest score: 26\n")
}

func TestRun_EnvOverrides(t *testing.T) {
	path := writeMaze(t, twoRoutes)
	t.Setenv("ORIENTPATH_INPUT", path)
	t.Setenv("ORIENTPATH_TURN_COST", "0")

	out, _, err := runCLI(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "lowest score: 3\n")
}

func TestRun_Heading(t *testing.T) {
	path := writeMaze(t, twoRoutes)

	// Facing Down, the left-hand route needs one turn fewer.
	out, _, err := runCLI(t, "", "--heading", "DOWN", path)
	require.NoError(t, err)
	assert.Contains(t, out, "lowest score: 1003\n")
	assert.Contains(t, out, "cells on optimal paths: 4\n")
}

func TestRun_Unreachable(t *testing.T) {
	path := writeMaze(t, "#######\n#S.#.E#\n#######\n")

	out, _, err := runCLI(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "lowest score: unreachable\ncells on optimal paths: 0\n", out)
}

func TestRun_DebugJSONLogs(t *testing.T) {
	path := writeMaze(t, twoRoutes)

	_, stderr, err := runCLI(t, "", "--log-level", "debug", "--log-format", "json", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"maze loaded"`)
	assert.Contains(t, stderr, `"msg":"oriented search complete"`)
}

func TestRun_Errors(t *testing.T) {
	good := writeMaze(t, twoRoutes)
	bad := writeMaze(t, "#####\n#S.S#\n#####\n")

	cases := []struct {
		name string
		args []string
		code int
	}{
		{"InvalidGrid", []string{bad}, exitInvalidInput},
		{"BadHeading", []string{"--heading", "north", good}, exitUsage},
		{"BadLogLevel", []string{"--log-level", "loud", good}, exitUsage},
		{"BadLogFormat", []string{"--log-format", "xml", good}, exitUsage},
		{"ZeroMoveCost", []string{"--move-cost", "0", good}, exitUsage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runCLI(t, "", tc.args...)
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "want *ExitError, got %v", err)
			assert.Equal(t, tc.code, exitErr.Code)
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	_, _, err := runCLI(t, "", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_StateLimit(t *testing.T) {
	path := writeMaze(t, twoRoutes)

	_, _, err := runCLI(t, "", "--max-states", "2", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "state limit exceeded")
}
