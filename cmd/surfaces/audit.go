package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/surfaces/internal/stylesheet"
)

type auditOptions struct {
	cssPaths []string
}

func newAuditCmd(root *rootFlags) *cobra.Command {
	opts := &auditOptions{}

	cmd := &cobra.Command{
		Use:   "audit --css <file>",
		Short: "Report table classes that no stylesheet defines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, root, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.cssPaths, "css", nil, "Stylesheet to read (repeatable)")
	cmd.MarkFlagRequired("css") //nolint:errcheck

	return cmd
}

func runAudit(cmd *cobra.Command, root *rootFlags, opts *auditOptions) error {
	env, err := loadEnvironment(cmd, root, "audit stylesheets")
	if err != nil {
		return err
	}

	defined := map[string]struct{}{}
	for _, path := range opts.cssPaths {
		names, err := readClassNames(path)
		if err != nil {
			return newCommandError("audit stylesheets", "reading "+path, err, "Check that the stylesheet exists and is valid CSS.")
		}
		for name := range names {
			defined[name] = struct{}{}
		}
	}

	report := stylesheet.Audit(env.table, defined)
	out := cmd.OutOrStdout()
	if report.OK() {
		fmt.Fprintf(out, "all %d class(es) are defined\n", report.Tokens)
		return nil
	}

	missing := report.MissingClasses()
	for _, class := range missing {
		fmt.Fprintf(out, "%s\tused by %s\n", class, strings.Join(report.Missing[class], ", "))
	}
	return newCommandError("audit stylesheets", fmt.Sprintf("%d of %d class(es) undefined", len(missing), report.Tokens),
		fmt.Errorf("missing selectors: %s", strings.Join(missing, " ")), "Add the classes to your stylesheet or drop them from the mappings.")
}

func readClassNames(path string) (map[string]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return stylesheet.ClassNames(file)
}
