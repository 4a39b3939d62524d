package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type lookupOptions struct {
	ordered bool
}

func newLookupCmd(root *rootFlags) *cobra.Command {
	opts := &lookupOptions{}

	cmd := &cobra.Command{
		Use:   "lookup <key>...",
		Short: "Print the classes a semantic key expands to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, root, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.ordered, "ordered", false, "Print classes in copy order")

	return cmd
}

func runLookup(cmd *cobra.Command, root *rootFlags, opts *lookupOptions, keys []string) error {
	env, err := loadEnvironment(cmd, root, "look up keys")
	if err != nil {
		return err
	}

	orderer := env.cfg.Orderer()
	var missing []string
	for _, key := range keys {
		classes, ok := env.table.Lookup(key)
		if !ok {
			missing = append(missing, key)
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: unknown mapping\n", key)
			continue
		}

		line := strings.Join(classes, " ")
		if opts.ordered {
			line = orderer.Format(classes)
		}
		if len(keys) == 1 {
			fmt.Fprintln(cmd.OutOrStdout(), line)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, line)
	}

	if len(missing) > 0 {
		return newCommandError("look up keys", strings.Join(missing, ", "), fmt.Errorf("%d unknown mapping key(s)", len(missing)),
			"Run 'surfaces list' to see the available keys.")
	}
	return nil
}
