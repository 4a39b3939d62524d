package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestPullClonesAndReportsTable(t *testing.T) {
	source := initTableRepo(t, "version: \"1.0\"\nmappings:\n  hero: \"surface card glossy gold window\"\n")
	dest := filepath.Join(t.TempDir(), "tables")

	out, err := executeCommand(t, "", "pull", source, "--dest", dest)
	require.NoError(t, err)
	require.Contains(t, out.stdout, dest+" cloned at ")
	require.Contains(t, out.stdout, "(1 mapping(s))")
	require.Contains(t, out.stdout, "surfaces --config "+filepath.Join(dest, "surfaces.yaml"))

	out, err = executeCommand(t, "", "pull", source, "--dest", dest)
	require.NoError(t, err)
	require.Contains(t, out.stdout, "up to date")

	lookup, err := executeCommand(t, "", "--config", filepath.Join(dest, "surfaces.yaml"), "lookup", "hero")
	require.NoError(t, err)
	require.Equal(t, "surface card glossy gold window\n", lookup.stdout)
}

func TestPullRejectsInvalidTable(t *testing.T) {
	source := initTableRepo(t, "version: nope\n")

	_, err := executeCommand(t, "", "pull", source, "--dest", filepath.Join(t.TempDir(), "tables"))
	require.ErrorContains(t, err, "Ask the repository owners")
}

func TestPullDefaultsDestination(t *testing.T) {
	original := pullCmdRunner
	t.Cleanup(func() { pullCmdRunner = original })

	var got pullOptions
	pullCmdRunner = func(cmd *cobra.Command, root *rootFlags, opts pullOptions) error {
		got = opts
		return nil
	}

	_, err := executeCommand(t, "", "pull", "https://example.com/acme/tables.git", "--branch", "main", "--depth", "1")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(".surfaces", "tables"), got.Destination)
	require.Equal(t, "main", got.Branch)
	require.Equal(t, 1, got.Depth)
}

func initTableRepo(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "surfaces.yaml"), []byte(contents), 0o644))
	_, err = wt.Add("surfaces.yaml")
	require.NoError(t, err)

	_, err = wt.Commit("add table", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Surfaces",
			Email: "surfaces@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}
