package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/surfaces/internal/mappings"
)

type listOptions struct {
	jsonOutput bool
}

type listEntry struct {
	Key       string   `json:"key"`
	Component string   `json:"component,omitempty"`
	Classes   []string `json:"classes"`
	Exempt    bool     `json:"exempt,omitempty"`
}

func newListCmd(root *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the effective mapping table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, root *rootFlags, opts *listOptions) error {
	env, err := loadEnvironment(cmd, root, "list mappings")
	if err != nil {
		return err
	}

	entries := listEntries(env.table)
	if opts.jsonOutput {
		return renderListJSON(cmd, entries)
	}
	return renderListTable(cmd, entries)
}

func listEntries(table *mappings.Table) []listEntry {
	keys := table.Keys()
	entries := make([]listEntry, 0, len(keys))
	for _, key := range keys {
		classes, _ := table.Lookup(key)
		component, _ := table.Component(key)
		entries = append(entries, listEntry{
			Key:       key,
			Component: component,
			Classes:   classes,
			Exempt:    table.Exempt(key),
		})
	}
	return entries
}

func renderListTable(cmd *cobra.Command, entries []listEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No mappings defined.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "KEY\tCOMPONENT\tCLASSES")
	for _, e := range entries {
		component := e.Component
		if component == "" {
			component = "-"
		}
		if e.Exempt {
			component += "*"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", e.Key, component, strings.Join(e.Classes, " "))
	}
	return writer.Flush()
}

func renderListJSON(cmd *cobra.Command, entries []listEntry) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(entries); err != nil {
		return newCommandError("list mappings", "encoding JSON output", err, "Retry without --json.")
	}
	return nil
}
