package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type commandOutput struct {
	stdout string
	stderr string
}

func executeCommand(t *testing.T, stdin string, args ...string) (commandOutput, error) {
	t.Helper()
	t.Setenv("SURFACES_CONFIG", "")
	t.Setenv(envLogLevel, "")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return commandOutput{stdout: stdout.String(), stderr: stderr.String()}, err
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func writeProjectFile(t *testing.T, contents string) string {
	t.Helper()
	return writeFile(t, t.TempDir(), "surfaces.yaml", contents)
}
