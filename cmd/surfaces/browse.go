package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/surfaces/internal/tui"
)

var browseProgramRunner = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func newBrowseCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the mapping table interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, root)
		},
	}
}

func runBrowse(cmd *cobra.Command, root *rootFlags) error {
	env, err := loadEnvironment(cmd, root, "browse mappings")
	if err != nil {
		return err
	}

	if !isTerminal(cmd.OutOrStdout()) {
		return renderListTable(cmd, listEntries(env.table))
	}

	if err := browseProgramRunner(tui.NewModel(env.table)); err != nil {
		return newCommandError("browse mappings", "running the interface", err, "Use 'surfaces list' instead.")
	}
	return nil
}
