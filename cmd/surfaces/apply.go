package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/surfaces/internal/dom"
	"github.com/alexisbeaulieu97/surfaces/internal/mapper"
	"github.com/alexisbeaulieu97/surfaces/pkg/diff"
)

type applyOptions struct {
	Files           []string
	Write           bool
	Diff            bool
	Attribute       string
	RemoveAttribute bool
	NoPreserve      bool
	Strict          bool
}

var applyCmdRunner = runApply

func newApplyCmd(root *rootFlags) *cobra.Command {
	opts := applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply [files...]",
		Short: "Rewrite data-surface markers in HTML files into classes",
		Long:  "Reads each HTML file (or stdin when none is given), adds the classes of every data-surface marker and prints the result.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Files = args
			if opts.Write && opts.Diff {
				return newCommandError("apply", "reading flags", fmt.Errorf("--write and --diff are mutually exclusive"), "Pick one of --write or --diff.")
			}
			if opts.Write && len(opts.Files) == 0 {
				return newCommandError("apply", "reading flags", fmt.Errorf("--write needs file arguments"), "Pass the files to rewrite in place.")
			}
			return applyCmdRunner(cmd, root, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "Rewrite files in place")
	cmd.Flags().BoolVar(&opts.Diff, "diff", false, "Print a unified diff instead of the rewritten document")
	cmd.Flags().StringVar(&opts.Attribute, "attribute", "", "Marker attribute (default from project file, then data-surface)")
	cmd.Flags().BoolVar(&opts.RemoveAttribute, "remove-attribute", false, "Strip the marker once processed")
	cmd.Flags().BoolVar(&opts.NoPreserve, "no-preserve", false, "Replace existing classes instead of keeping them")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when a marker names an unknown key")

	return cmd
}

func runApply(cmd *cobra.Command, root *rootFlags, opts applyOptions) error {
	env, err := loadEnvironment(cmd, root, "apply")
	if err != nil {
		return err
	}

	procOpts := env.cfg.ProcessorOptions()
	if opts.Attribute != "" {
		procOpts.Attribute = opts.Attribute
	}
	if opts.RemoveAttribute {
		procOpts.RemoveAttribute = true
	}
	if opts.NoPreserve {
		procOpts.DiscardExisting = true
	}

	proc := env.processor()
	unknown := map[string]int{}

	sources := opts.Files
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	for _, source := range sources {
		report, err := applyOne(cmd, proc, procOpts, source, opts)
		if err != nil {
			return err
		}
		for key, n := range report.Unknown {
			unknown[key] += n
		}
		env.log.Debug("applied mappings", "file", source, "elements", len(report.Processed))
	}

	if opts.Strict && len(unknown) > 0 {
		return newCommandError("apply", "resolving markers", fmt.Errorf("unknown mapping keys: %s", formatCounts(unknown)),
			"Add the keys to the mappings section of your project file or fix the markers.")
	}
	return nil
}

func applyOne(cmd *cobra.Command, proc *mapper.Processor, procOpts mapper.Options, source string, opts applyOptions) (mapper.Report, error) {
	data, err := readSource(cmd, source)
	if err != nil {
		return mapper.Report{}, newCommandError("apply", "reading "+source, err, "Check that the file exists and is readable.")
	}

	doc, err := dom.Parse(bytes.NewReader(data))
	if err != nil {
		return mapper.Report{}, newCommandError("apply", "parsing "+source, err, "Make sure the input is HTML.")
	}
	before := doc.String()

	report := proc.Apply(doc, procOpts)
	after := doc.String()

	out := cmd.OutOrStdout()
	switch {
	case opts.Diff:
		fmt.Fprint(out, diff.GenerateUnifiedDiff([]byte(before), []byte(after), "a/"+source, "b/"+source))
	case opts.Write:
		if err := writeInPlace(source, []byte(after)); err != nil {
			return report, newCommandError("apply", "writing "+source, err, "Check file permissions.")
		}
		fmt.Fprintf(out, "%s: %d element(s) updated\n", source, len(report.Processed))
	default:
		fmt.Fprintln(out, after)
	}
	return report, nil
}

func readSource(cmd *cobra.Command, source string) ([]byte, error) {
	if source == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(source)
}

func writeInPlace(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, info.Mode().Perm())
}

func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s (%d)", key, counts[key]))
	}
	return strings.Join(parts, ", ")
}
