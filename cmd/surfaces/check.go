package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/surfaces/internal/mappings"
)

var (
	checkPassStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	checkFailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	checkKeyStyle  = lipgloss.NewStyle().Bold(true)
)

func newCheckCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify every mapping names one component, a finish and a material",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root)
		},
	}
}

func runCheck(cmd *cobra.Command, root *rootFlags) error {
	env, err := loadEnvironment(cmd, root, "check mappings")
	if err != nil {
		return err
	}

	violations := mappings.Check(env.table)
	out := cmd.OutOrStdout()
	unicode := isTerminal(out)

	if len(violations) == 0 {
		fmt.Fprintf(out, "%s %d mapping(s) from %s follow the vocabulary rules\n",
			paint(unicode, checkPassStyle, "✓", "[OK]"), env.table.Len(), displayPath(env.configPath))
		return nil
	}

	for _, v := range violations {
		fmt.Fprintf(out, "%s %s %s: %s\n",
			paint(unicode, checkFailStyle, "✗", "[XX]"), paint(unicode, checkKeyStyle, v.Key, v.Key), v.Rule, v.Message)
	}

	return newCommandError("check mappings", fmt.Sprintf("%d violation(s) in %s", len(violations), displayPath(env.configPath)),
		violations[0].Err(), "Give each entry exactly one component, a finish and a material, or mark it exempt.")
}

// paint styles fancy on a terminal and falls back to plain text elsewhere.
func paint(terminal bool, style lipgloss.Style, fancy, plain string) string {
	if terminal {
		return style.Render(fancy)
	}
	return plain
}
