package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/surfaces/internal/config"
	"github.com/alexisbeaulieu97/surfaces/internal/remote"
)

type pullOptions struct {
	URL         string
	Destination string
	Branch      string
	Depth       int
}

var pullCmdRunner = runPull

func newPullCmd(root *rootFlags) *cobra.Command {
	opts := pullOptions{}

	cmd := &cobra.Command{
		Use:   "pull <url>",
		Short: "Clone or update a shared mapping table repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.URL = args[0]
			if opts.Destination == "" {
				opts.Destination = defaultPullDestination(opts.URL)
			}
			return pullCmdRunner(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Destination, "dest", "", "Clone location (default .surfaces/<repository>)")
	cmd.Flags().StringVar(&opts.Branch, "branch", "", "Branch to track")
	cmd.Flags().IntVar(&opts.Depth, "depth", 0, "Shallow clone depth")

	return cmd
}

func runPull(cmd *cobra.Command, root *rootFlags, opts pullOptions) error {
	log, err := newCommandLogger(cmd.ErrOrStderr(), root.verbose)
	if err != nil {
		return newCommandError("pull table", "creating logger", err, "Set SURFACES_LOG_LEVEL to one of debug, info, warn or error.")
	}

	result, err := remote.Sync(context.Background(), remote.Options{
		URL:         opts.URL,
		Destination: opts.Destination,
		Branch:      opts.Branch,
		Depth:       opts.Depth,
		Logger:      log,
	})
	if err != nil {
		return newCommandError("pull table", opts.URL, err, "Remove the destination or pass another --dest.")
	}

	tablePath := remote.TablePath(opts.Destination)
	cfg, err := config.ParseConfig(tablePath)
	if err != nil {
		return newCommandError("pull table", "validating "+tablePath, err, "Ask the repository owners to fix the project file.")
	}

	state := "up to date"
	switch {
	case result.Cloned:
		state = "cloned"
	case result.Updated:
		state = "updated"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s at %s (%d mapping(s))\n", opts.Destination, state, shortHash(result.Head), len(cfg.Mappings))
	fmt.Fprintf(cmd.OutOrStdout(), "Use it with: surfaces --config %s <command>\n", tablePath)
	return nil
}

func defaultPullDestination(url string) string {
	base := strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	if idx := strings.LastIndexAny(base, "/:"); idx >= 0 {
		base = base[idx+1:]
	}
	if base == "" {
		base = "table"
	}
	return filepath.Join(".surfaces", base)
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
