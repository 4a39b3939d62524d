package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/surfaces/internal/classstack"
	"github.com/alexisbeaulieu97/surfaces/internal/vocabulary"
)

type stackOptions struct {
	keys  []string
	group bool
}

func newStackCmd(root *rootFlags) *cobra.Command {
	opts := &stackOptions{}

	cmd := &cobra.Command{
		Use:   "stack [class...]",
		Short: "Render classes in copy order: finish, density, bloom, material, shape, other",
		Long:  "Orders class tokens the way they are copied out of the design tool. Internal tokens such as menu, surface and overlay are dropped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(opts.keys) == 0 {
				return newCommandError("order classes", "reading arguments", fmt.Errorf("no classes or keys given"), "Pass class tokens or --key <semantic-key>.")
			}
			return runStack(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.keys, "key", "k", nil, "Semantic key whose classes are added (repeatable)")
	cmd.Flags().BoolVar(&opts.group, "group", false, "Print one line per category")

	return cmd
}

func runStack(cmd *cobra.Command, root *rootFlags, opts *stackOptions, args []string) error {
	env, err := loadEnvironment(cmd, root, "order classes")
	if err != nil {
		return err
	}

	groups := make([][]string, 0, len(args)+len(opts.keys))
	for _, arg := range args {
		groups = append(groups, classstack.Fields(arg))
	}
	for _, key := range opts.keys {
		classes, ok := env.table.Lookup(key)
		if !ok {
			return newCommandError("order classes", "resolving key "+key, fmt.Errorf("unknown mapping %q", key),
				"Run 'surfaces list' to see the available keys.")
		}
		groups = append(groups, classes)
	}

	tokens := classstack.Merge(groups...)
	ordered := env.cfg.Orderer().Order(tokens)

	if !opts.group {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ordered, " "))
		return nil
	}

	byCategory := map[vocabulary.Category][]string{}
	for _, token := range ordered {
		c := vocabulary.Categorize(token)
		byCategory[c] = append(byCategory[c], token)
	}
	for _, c := range append(vocabulary.DisplayOrder(), vocabulary.Component, vocabulary.Other) {
		if tokens := byCategory[c]; len(tokens) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%-9s %s\n", c, strings.Join(tokens, " "))
		}
	}
	return nil
}
